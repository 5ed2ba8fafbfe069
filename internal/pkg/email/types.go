// internal/pkg/email/types.go
package email

// Email represents an outgoing message
type Email struct {
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"html_content"`
	TextContent string   `json:"text_content,omitempty"`
	ReplyTo     string   `json:"reply_to,omitempty"`
}
