package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/errs"
	"github.com/studioflow/portfolio-backend/models"
)

type contactHandler struct {
	responder  Responder
	logger     zerolog.Logger
	store      *appwrite.Client
	collection string
	notifier   MessageNotifier
}

func newContactHandler(store *appwrite.Client, cfg config.Appwrite, notifier MessageNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		store:      store,
		collection: cfg.MessagesCollection,
		notifier:   notifier,
	}
}

type contactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Honeypot string `json:"honeypot,omitempty"`
}

// submitMessage persists a contact-form submission to the messages
// collection. Bots filling the honeypot field get a silent success.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Honeypot != "" {
			h.logger.Debug().Msg("Honeypot triggered, dropping message")
			h.responder.WriteJSON(w, map[string]any{"success": true})
			return
		}

		message := models.Message{
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if field, reason, ok := message.Validate(); !ok {
			h.responder.WriteValidationError(w, field, reason)
			return
		}

		if _, err := h.store.CreateDocument(r.Context(), h.collection, message); err != nil {
			h.responder.WriteError(w, wrapStoreError("create", "message", err))
			return
		}

		// Notification failures must not fail the submission.
		if h.notifier != nil {
			go func() {
				if err := h.notifier.NotifyNewMessage(message); err != nil {
					h.logger.Warn().Err(err).Msg("Failed to send message notification")
				}
			}()
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
