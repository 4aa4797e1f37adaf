package request

type CreateFeedbackRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}
