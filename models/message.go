package models

import "strings"

// Message is one contact-form submission persisted in the messages collection.
type Message struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Validate applies the contact form's minimal field checks. The returned
// field/reason pair feeds a structured 400 response.
func (m Message) Validate() (field, reason string, ok bool) {
	if len(strings.TrimSpace(m.Name)) < 2 {
		return "name", "Name must be at least 2 characters", false
	}
	at := strings.Index(m.Email, "@")
	if at < 1 || at == len(m.Email)-1 || !strings.Contains(m.Email[at:], ".") {
		return "email", "Invalid email address", false
	}
	if len(strings.TrimSpace(m.Message)) < 10 {
		return "message", "Message must be at least 10 characters", false
	}
	return "", "", true
}
