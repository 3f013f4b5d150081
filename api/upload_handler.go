package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/studioflow/portfolio-backend/appwrite"
	"github.com/studioflow/portfolio-backend/config"
	"github.com/studioflow/portfolio-backend/errs"
)

// maxUploadSize caps proxied asset uploads.
const maxUploadSize = 25 << 20 // 25MB

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *appwrite.Client
	bucket    string
}

func newUploadHandler(store *appwrite.Client, cfg config.Appwrite) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		bucket:    cfg.AssetsBucket,
	}
}

// uploadFile proxies a multipart upload into the project assets bucket and
// returns the created file's metadata, including its view URL.
func (h uploadHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("no file provided"))
			return
		}
		defer file.Close()

		created, err := h.store.CreateFile(r.Context(), h.bucket, header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, wrapStoreError("upload", "file", err))
			return
		}

		h.logger.Info().Str("fileId", created.ID).Str("name", created.Name).Msg("Uploaded file to bucket")

		h.responder.WriteJSON(w, map[string]any{
			"file":    created,
			"viewUrl": h.store.FileViewURL(h.bucket, created.ID),
		})
	}
}
