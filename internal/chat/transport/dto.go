package transport

// Turn is one prior exchange replayed by the client.
type Turn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	History []Turn `json:"history" validate:"max=50"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
