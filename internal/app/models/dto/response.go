package dto

// CreateResponse is the standard response for create operations.
type CreateResponse struct {
	ID      int64 `json:"id" example:"1"`
	Success bool  `json:"success" example:"true"`
}

// MutationResponse is the standard response for delete/update operations.
// Success is false when the target row did not exist; that is reported as a
// no-effect outcome, not an error.
type MutationResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
