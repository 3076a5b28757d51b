package models

// Template is a suggested grade/subject/topic combination for the create form.
type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
}
