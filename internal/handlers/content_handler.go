package handlers

import (
	"context"
	"strconv"

	"content-catalog/internal/models"
	"content-catalog/internal/services"
	"content-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	searchCacheControl = "public, max-age=600"
	fetchCacheControl  = "public, max-age=300"
)

type ContentHandler struct {
	service services.ContentService
	logger  *logrus.Logger
}

func NewContentHandler(service services.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger,
	}
}

// SearchContents godoc
// @Summary Search content
// @Description List content whose title or any genre contains the filter (case-sensitive). An empty filter returns everything.
// @Tags content
// @Accept json
// @Produce json
// @Param filter query string false "Substring matched against title and genres"
// @Success 200 {object} utils.StandardResponse{data=[]models.Content,meta=utils.ListMeta} "Matching content"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content [get]
func (h *ContentHandler) SearchContents(c *fiber.Ctx) error {
	ctx := c.UserContext()
	filter := c.Query("filter")

	contents, err := h.service.SearchContents(ctx, filter)
	if err != nil {
		h.logger.WithError(err).WithField("filter", filter).Error("Failed to search content")
		return utils.StoreErrorResponse(c, err)
	}

	c.Set(fiber.HeaderCacheControl, searchCacheControl)
	meta := utils.ListMeta{Total: len(contents), Filter: filter}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Content retrieved successfully", contents, meta)
}

// GetContent godoc
// @Summary Get content by ID
// @Tags content
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Success 200 {object} utils.StandardResponse{data=models.Content} "Content details"
// @Failure 400 {object} utils.StandardResponse "Invalid content ID"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Router /content/{id} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	content, err := h.service.GetContent(c.UserContext(), id)
	if err != nil {
		h.logError(err, id, "Failed to get content")
		return utils.StoreErrorResponse(c, err)
	}

	c.Set(fiber.HeaderCacheControl, fetchCacheControl)
	return utils.SuccessResponse(c, fiber.StatusOK, "Content retrieved successfully", content)
}

// CreateContent godoc
// @Summary Create content
// @Tags content
// @Accept json
// @Produce json
// @Param content body ContentRequest true "Content to create"
// @Success 201 {object} utils.StandardResponse{data=models.Content} "Content created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content [post]
func (h *ContentHandler) CreateContent(c *fiber.Ctx) error {
	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	content, err := h.service.CreateContent(c.UserContext(), req.toFields())
	if err != nil {
		h.logger.WithError(err).Error("Failed to create content")
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Content created successfully", content)
}

// UpdateContent godoc
// @Summary Update content
// @Description Overwrites every scalar field with the request values; omitted optional fields become null. Genres are left unchanged, use the genre endpoints instead.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Param content body ContentRequest true "Replacement field values"
// @Success 200 {object} utils.StandardResponse{data=models.Content} "Content updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content/{id} [patch]
func (h *ContentHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var req ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	content, err := h.service.UpdateContent(c.UserContext(), id, req.toFields())
	if err != nil {
		h.logError(err, id, "Failed to update content")
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content updated successfully", content)
}

// DeleteContent godoc
// @Summary Delete content
// @Tags content
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Success 200 {object} utils.StandardResponse{data=DeleteContentResponse} "Content deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid content ID"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	deleted, err := h.service.DeleteContent(c.UserContext(), id)
	if err != nil {
		h.logError(err, id, "Failed to delete content")
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Content deleted successfully", DeleteContentResponse{ID: deleted.String()})
}

// AddGenres godoc
// @Summary Add genres to content
// @Description Appends the given tags; tags already present are moved to the end in request order.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Param genres body []string true "Genre tags"
// @Success 200 {object} utils.StandardResponse{data=models.Content} "Genres added"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content/{id}/genre [post]
func (h *ContentHandler) AddGenres(c *fiber.Ctx) error {
	return h.changeGenres(c, h.service.AddGenres, "Genres added successfully")
}

// RemoveGenres godoc
// @Summary Remove genres from content
// @Description Removes the given tags; tags that are not present are ignored.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID (UUID)"
// @Param genres body []string true "Genre tags"
// @Success 200 {object} utils.StandardResponse{data=models.Content} "Genres removed"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Content not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content/{id}/genre [delete]
func (h *ContentHandler) RemoveGenres(c *fiber.Ctx) error {
	return h.changeGenres(c, h.service.RemoveGenres, "Genres removed successfully")
}

// GetGenreStats godoc
// @Summary Genre usage
// @Description Number of content items per genre tag, most used first.
// @Tags content
// @Produce json
// @Param limit query int false "Maximum number of tags (1-100)" default(10)
// @Success 200 {object} utils.StandardResponse{data=[]models.GenreCount} "Genre counts"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /content/genres [get]
func (h *ContentHandler) GetGenreStats(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	stats, err := h.service.GenreStats(c.UserContext(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genre stats")
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genre stats retrieved successfully", stats)
}

type genreChange func(ctx context.Context, id uuid.UUID, genres []string) (*models.Content, error)

func (h *ContentHandler) changeGenres(c *fiber.Ctx, change genreChange, message string) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	var genres []string
	if err := c.BodyParser(&genres); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Request body must be a JSON array of genre tags")
	}

	content, err := change(c.UserContext(), id, genres)
	if err != nil {
		h.logError(err, id, "Failed to change genres")
		return utils.StoreErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, message, content)
}

func (h *ContentHandler) logError(err error, id uuid.UUID, msg string) {
	entry := h.logger.WithError(err).WithField("id", id)
	if utils.StatusForError(err) == fiber.StatusInternalServerError {
		entry.Error(msg)
		return
	}
	entry.Warn(msg)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}
