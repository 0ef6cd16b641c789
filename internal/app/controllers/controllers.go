package controllers

import "fmt"

func errInvalidID(resource string) error {
	return fmt.Errorf("invalid %s id", resource)
}
