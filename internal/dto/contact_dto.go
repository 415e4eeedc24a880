package dto

// ContactRequest defines the expected payload for the contact form endpoint.
// Phone is always optional and never format-checked.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message" validate:"required"`
}

// ContactReceipt communicates the outcome of a processed submission.
type ContactReceipt struct {
	ReferenceID  string `json:"reference_id"`
	Confirmation string `json:"confirmation"`
}
