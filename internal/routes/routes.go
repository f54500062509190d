package routes

import (
	"content-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup mounts the v1 API. uploadHandler is nil when image storage is disabled.
func Setup(app *fiber.App, contentHandler *handlers.ContentHandler, uploadHandler *handlers.UploadHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	content := v1.Group("/content")
	{
		content.Get("/", contentHandler.SearchContents)
		content.Get("/genres", contentHandler.GetGenreStats)
		content.Get("/:id", contentHandler.GetContent)
		content.Post("/", contentHandler.CreateContent)
		content.Patch("/:id", contentHandler.UpdateContent)
		content.Delete("/:id", contentHandler.DeleteContent)
		content.Post("/:id/genre", contentHandler.AddGenres)
		content.Delete("/:id/genre", contentHandler.RemoveGenres)
	}

	if uploadHandler != nil {
		upload := v1.Group("/upload")
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
