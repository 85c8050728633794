package imports

type ImportHighlightsPayload struct {
	Text string `json:"text" validate:"required,min=1,max=1000000"`
}
