package dto

// CreateNoticeRequest represents a request to post a notice to a board.
// SendEmail is honored only for admin/faculty callers; for anyone else it is
// coerced to false by the service layer.
type CreateNoticeRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	PostedBy  int64  `json:"posted_by"`
	SendEmail bool   `json:"send_email"`
	Category  string `json:"category" binding:"required"`
}
