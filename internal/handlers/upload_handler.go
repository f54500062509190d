package handlers

import (
	"context"

	"content-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ImagePresigner hands out upload URLs for content images.
type ImagePresigner interface {
	GeneratePresignedURL(ctx context.Context, filename string) (string, string, error)
}

type UploadHandler struct {
	presigner ImagePresigner
	logger    *logrus.Logger
}

func NewUploadHandler(presigner ImagePresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		presigner: presigner,
		logger:    logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a content image
// @Description Generate a presigned PUT URL for uploading a content image. Store the returned public_url as the content image_url.
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse{data=PresignResponse}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.presigner.GeneratePresignedURL(c.UserContext(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", PresignResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}
