package requests

// EmailPayload is the message shape pushed onto the mailer queue and
// consumed by the worker.
type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Bcc      []string `json:"bcc,omitempty"`
	HTMLBody string   `json:"html_body"`
}
