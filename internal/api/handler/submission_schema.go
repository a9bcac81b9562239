package handler

import "time"

type updateSubmissionRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type replyRequest struct {
	Message string `json:"message" validate:"required"`
}

type submissionResponse struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listSubmissionsResponse struct {
	Data       []submissionResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
