package transport

// LeadRequest captures customer details when they are ready to buy or book.
// Validation is deliberately permissive: this is a logging sink, not a system
// of record, so only presence is enforced.
type LeadRequest struct {
	Email   string `json:"email" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// FeedbackRequest captures a question the assistant could not resolve.
type FeedbackRequest struct {
	Question string `json:"question" validate:"required"`
}

// ServiceFeedbackRequest captures post-service feedback.
type ServiceFeedbackRequest struct {
	Email        string `json:"email" validate:"required"`
	Name         string `json:"name" validate:"required"`
	ServiceType  string `json:"service_type" validate:"required"`
	Satisfaction string `json:"satisfaction" validate:"required"`
	Comments     string `json:"comments"`
}

// Ack is the fixed acknowledgement envelope returned after a durable write.
type Ack struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}
