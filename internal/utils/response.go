package utils

import (
	"errors"

	"content-catalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// StandardResponse is the JSON envelope for every API response
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ListMeta describes a search result
type ListMeta struct {
	Total  int    `json:"total"`
	Filter string `json:"filter"`
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return ErrorWithDataResponse(c, code, message, nil)
}

func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	status := "error"
	if code >= 500 {
		status = "fail"
	}
	return c.Status(code).JSON(StandardResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// StatusForError maps store errors onto HTTP status codes.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrContentNotFound):
		return fiber.StatusNotFound
	case models.IsValidationError(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// StoreErrorResponse writes err with the status StatusForError picks. Storage
// failures are reported without the driver message.
func StoreErrorResponse(c *fiber.Ctx, err error) error {
	code := StatusForError(err)
	if code == fiber.StatusInternalServerError {
		return ErrorResponse(c, code, "Internal server error")
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ErrorWithDataResponse(c, code, ve.Error(), fiber.Map{"field": ve.Field})
	}
	return ErrorResponse(c, code, err.Error())
}
