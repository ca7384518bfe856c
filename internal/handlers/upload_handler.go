package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"content-service/internal/storage"
	"content-service/internal/utils"
)

// Uploader is what the handler needs from the asset store.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type UploadHandler struct {
	store  Uploader
	auth   *AuthHandler
	logger *zap.SugaredLogger
}

func NewUploadHandler(store Uploader, auth *AuthHandler, logger *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{store: store, auth: auth, logger: logger}
}

// POST /upload (multipart/form-data 'file')
//
// Pushes the binary to the asset store and returns the URL to persist
// on the content record. Images additionally get a thumbnail object.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "No file provided")
	}
	if err := utils.ValidateFileHeader(fileHeader); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, err.Error())
	}
	f, err := fileHeader.Open()
	if err != nil {
		return utils.JSONError(c, fiber.StatusInternalServerError, "cannot open file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return utils.JSONError(c, fiber.StatusInternalServerError, "cannot read file")
	}

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}

	key := uuid.NewString() + "_" + fileHeader.Filename
	url, err := h.store.Upload(c.Context(), key, ct, data)
	if err != nil {
		h.logger.Errorw("upload failed", "key", key, "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Upload failed")
	}

	resp := fiber.Map{"success": true, "url": url, "key": key}
	if strings.HasPrefix(ct, "image/") {
		if thumb, err := storage.Thumbnail(data); err == nil {
			thumbKey := key + "_thumb.jpg"
			if thumbURL, err := h.store.Upload(c.Context(), thumbKey, "image/jpeg", thumb); err == nil {
				resp["thumbnailUrl"] = thumbURL
			}
		}
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
