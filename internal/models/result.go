package models

type EvaluateResponse struct {
	ID          string `json:"id"`
	Score       string `json:"score"`
	Evaluation  string `json:"evaluation"`
	FileName    string `json:"file_name"`
	Format      string `json:"format"`
	Model       string `json:"model"`
	ResumeChars int    `json:"resume_chars"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func NewEvaluateResponse(r *EvaluationResult) EvaluateResponse {
	return EvaluateResponse{
		ID:          r.ID.String(),
		Score:       r.Score,
		Evaluation:  r.Evaluation,
		FileName:    r.FileName,
		Format:      string(r.Format),
		Model:       r.Model,
		ResumeChars: r.ResumeChars,
	}
}
