package entity

// MailMessage is an outgoing e-mail notification.
type MailMessage struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	Text      string   `json:"text"`
	HTML      string   `json:"html,omitempty"`
}
