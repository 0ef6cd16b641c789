package services

import (
	"context"
	"fmt"

	"github.com/campusos/campusos/internal/app/models"
	"github.com/campusos/campusos/internal/app/models/dto"
	"github.com/campusos/campusos/internal/pkg/apperrors"
)

// MaterialService defines the interface for study material operations
type MaterialService interface {
	ListMaterials(ctx context.Context, category string) ([]models.StudyMaterial, error)
	UploadMaterial(ctx context.Context, req *dto.CreateStudyMaterialRequest, callerRole models.Role) (int64, error)
}

// materialStore is the persistence surface the service needs.
type materialStore interface {
	GetAll(ctx context.Context, category string) ([]models.StudyMaterial, error)
	Create(ctx context.Context, material *models.StudyMaterial) (int64, error)
}

// materialServiceImpl implements MaterialService
type materialServiceImpl struct {
	materialRepo materialStore
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo materialStore) MaterialService {
	return &materialServiceImpl{materialRepo: materialRepo}
}

// ListMaterials returns study materials, optionally filtered by category.
func (s *materialServiceImpl) ListMaterials(ctx context.Context, category string) ([]models.StudyMaterial, error) {
	materials, err := s.materialRepo.GetAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error getting materials: %w", err)
	}
	return materials, nil
}

// UploadMaterial persists a resource link. Uploading is restricted to
// admin and faculty callers.
func (s *materialServiceImpl) UploadMaterial(ctx context.Context, req *dto.CreateStudyMaterialRequest, callerRole models.Role) (int64, error) {
	if !callerRole.CanBroadcast() {
		return 0, apperrors.ErrPermissionDenied
	}

	material := &models.StudyMaterial{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Category:    req.Category,
		UploadedBy:  req.UploadedBy,
	}

	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		return 0, fmt.Errorf("error creating material: %w", err)
	}
	return id, nil
}
