package api

import "github.com/studioflow/portfolio-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	skillHandler   skillHandler
	uploadHandler  uploadHandler
	contactHandler contactHandler
}

// MessageNotifier is notified after a contact message is persisted. A nil
// notifier disables notifications.
type MessageNotifier interface {
	NotifyNewMessage(msg models.Message) error
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
