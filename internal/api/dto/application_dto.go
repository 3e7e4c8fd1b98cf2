package dto

type CreateApplicationRequest struct {
	JobID               int64  `json:"jobId" binding:"required"`
	UserID              int64  `json:"userId" binding:"required"`
	CoverLetter         string `json:"coverLetter"`
	ResumeURL           string `json:"resumeUrl"`
	AdditionalDocuments string `json:"additionalDocuments"`
	Notes               string `json:"notes"`
}

// UpdateApplicationRequest carries the applicant-editable fields only.
// Status and feedback are employer-side and change through the status
// endpoint.
type UpdateApplicationRequest struct {
	CoverLetter         string `json:"coverLetter"`
	ResumeURL           string `json:"resumeUrl"`
	AdditionalDocuments string `json:"additionalDocuments"`
}
