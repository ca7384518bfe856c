package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-service/internal/models"
	"content-service/internal/services"
	"content-service/internal/utils"
)

type ContentHandler struct {
	svc    *services.ContentService
	auth   *AuthHandler
	logger *zap.SugaredLogger
}

func NewContentHandler(svc *services.ContentService, auth *AuthHandler, logger *zap.SugaredLogger) *ContentHandler {
	return &ContentHandler{svc: svc, auth: auth, logger: logger}
}

// GET /content?type=&limit=&skip=
func (h *ContentHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.List(c.Context(), c.Query("type"), c.Query("limit"), c.Query("skip"))
	if errors.Is(err, utils.ErrInvalidType) {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid content type")
	}
	if err != nil {
		h.logger.Errorw("list content", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// GET /content/:id
func (h *ContentHandler) Get(c *fiber.Ctx) error {
	item, err := h.svc.Get(c.Context(), c.Params("id"))
	if errors.Is(err, utils.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Content not found")
	}
	if err != nil {
		h.logger.Errorw("get content", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, item)
}

// POST /content
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var item models.Content
	if err := c.BodyParser(&item); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	created, err := h.svc.Create(c.Context(), &item)
	if errors.Is(err, utils.ErrMissingFields) {
		return utils.JSONError(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if errors.Is(err, utils.ErrInvalidType) {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid content type")
	}
	if err != nil {
		h.logger.Errorw("create content", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, created)
}

// PATCH /content/:id
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	var u services.ContentUpdate
	if err := c.BodyParser(&u); err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "invalid request body")
	}
	item, err := h.svc.Update(c.Context(), c.Params("id"), &u)
	if errors.Is(err, utils.ErrInvalidType) {
		return utils.JSONError(c, fiber.StatusBadRequest, "Invalid content type")
	}
	if errors.Is(err, utils.ErrMissingFields) {
		return utils.JSONError(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if errors.Is(err, utils.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Content not found")
	}
	if err != nil {
		h.logger.Errorw("update content", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, item)
}

// DELETE /content/:id
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	err := h.svc.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, utils.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Content not found")
	}
	if err != nil {
		h.logger.Errorw("delete content", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DELETE /content/delete-all-photos
func (h *ContentHandler) DeleteAllPhotos(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	count, err := h.svc.DeleteAllPhotos(c.Context())
	if err != nil {
		h.logger.Errorw("delete all photos", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "All photos deleted successfully",
		"deletedCount": count,
	})
}

// POST /content/:id/view
func (h *ContentHandler) RecordView(c *fiber.Ctx) error {
	err := h.svc.RecordView(c.Context(), c.Params("id"))
	if errors.Is(err, utils.ErrNotFound) {
		return utils.JSONError(c, fiber.StatusNotFound, "Content not found")
	}
	if err != nil {
		h.logger.Errorw("record view", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(fiber.Map{"success": true})
}

// GET /content/stats
func (h *ContentHandler) Stats(c *fiber.Ctx) error {
	if !h.auth.authenticated(c) {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		h.logger.Errorw("content stats", "error", err)
		return utils.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return utils.JSONSuccess(c, fiber.StatusOK, stats)
}
