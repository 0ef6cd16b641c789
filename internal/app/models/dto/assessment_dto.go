package dto

// SubmitAnswersRequest carries a (possibly partial) answer map for
// server-side scoring. Keys are question ids, values are chosen option
// indices.
type SubmitAnswersRequest struct {
	UserID  int64         `json:"user_id"`
	Answers map[int64]int `json:"answers" binding:"required"`
}

// RecordResultRequest stores a result whose score was computed by the
// caller. Kept for compatibility with the original submission flow.
type RecordResultRequest struct {
	AssessmentID int64 `json:"assessment_id" binding:"required"`
	UserID       int64 `json:"user_id"`
	Score        int   `json:"score"`
	TotalScore   int   `json:"total_score" binding:"required"`
}

// ScoreResponse reports the outcome of a scored submission.
type ScoreResponse struct {
	ID         int64 `json:"id"`
	Score      int   `json:"score"`
	TotalScore int   `json:"total_score"`
	Success    bool  `json:"success"`
}
