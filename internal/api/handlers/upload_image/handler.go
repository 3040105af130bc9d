package upload_image

import (
	"errors"
	"net/http"

	"github.com/ateliernature/animations-booking/internal/api/handlers"
	"github.com/ateliernature/animations-booking/internal/integrations/mediahost"
)

const (
	msgMissingFile      = "fichier image manquant (champ \"image\")"
	msgUnsupportedMedia = "format d'image non pris en charge"

	maxUploadBytes = 10 << 20 // 10 MiB
)

// UploadResponse HTTP response model
type UploadResponse struct {
	URL string `json:"url"`
}

type Handler struct {
	media  MediaClient
	logger Logger
}

func NewHandler(media MediaClient, logger Logger) *Handler {
	return &Handler{
		media:  media,
		logger: logger,
	}
}

// Handle POST /api/v1/media
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /media - Missing image file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	result, err := h.media.Upload(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, mediahost.ErrUnsupportedMedia):
			h.logger.Warn("POST /media - Unsupported media: %s", header.Filename)
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedMedia)

		default:
			h.logger.Error("POST /media - Failed to upload %s: %v", header.Filename, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /media - Uploaded %s -> %s", header.Filename, result.URL)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{URL: result.URL})
}
