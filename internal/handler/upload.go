package handler

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eternalrights/ssmp-go/internal/storage"
)

const maxUploadSize = 10 << 20 // 10MB

// UploadHandler handles multipart file uploads proxied to object storage.
type UploadHandler struct {
	uploader storage.Uploader
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// HandleUpload handles POST /upload requests. The stored object name is
// a fresh UUID with the original file extension; the response carries
// the public URL.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("reading file failed"))
		return
	}

	objectName := uuid.NewString() + filepath.Ext(header.Filename)

	url, err := h.uploader.Upload(r.Context(), data, objectName)
	if err != nil {
		slog.Error("file upload failed", "object", objectName, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
