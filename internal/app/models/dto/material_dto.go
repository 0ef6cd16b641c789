package dto

// CreateStudyMaterialRequest uploads a learning resource link. Restricted
// to admin/faculty callers.
type CreateStudyMaterialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required"`
	Category    string `json:"category"`
	UploadedBy  int64  `json:"uploaded_by"`
}
