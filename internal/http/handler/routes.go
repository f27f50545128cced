package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"contentsapi/internal/config"
	"contentsapi/internal/service"
	"contentsapi/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin: parameter plumbing in, pipeline results and status codes out.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.ContentsService, store storage.Storage, filesCfg config.FilesConfig) {
	// Health endpoint: checks DB connectivity only.
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable", "")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// submitContents runs the ingestion pipeline on the request body.
	//
	// @Summary Submit a contents record
	// @Accept json
	// @Produce json
	// @Param document body object true "contents document"
	// @Success 200 {object} model.ContentsDocument
	// @Router /contents [put]
	submitContents := func(c *fiber.Ctx) error {
		doc, err := svc.Put(c.UserContext(), c.Body())
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(doc)
	}
	app.Put("/contents", submitContents)
	app.Post("/contents", submitContents)

	// getContents returns the canonical stored record.
	//
	// @Summary Fetch a contents record by ISBN
	// @Produce json
	// @Param isbn path string true "ISBN"
	// @Success 200 {object} model.ContentsDocument
	// @Router /contents/{isbn} [get]
	app.Get("/contents/:isbn", func(c *fiber.Ctx) error {
		doc, err := svc.Get(c.UserContext(), c.Params("isbn"))
		if err != nil {
			return writeAppError(c, err)
		}
		return c.JSON(doc)
	})

	// File serving: redirect to a presigned blob URL, or stream the object
	// through when the caller asks for a proxy.
	//
	// @Summary Download a stored attachment
	// @Param path path string true "storage key below files/"
	// @Success 302
	// @Router /files/{path} [get]
	app.Get("/files/*", func(c *fiber.Ctx) error {
		key := "files/" + c.Params("*")
		if c.Params("*") == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "storage key is required", "")
		}

		if c.QueryBool("proxy") {
			rc, info, err := store.Get(c.UserContext(), key)
			if err != nil {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found", "")
			}
			if info.ContentType != "" {
				c.Set(fiber.HeaderContentType, info.ContentType)
			}
			return c.SendStream(rc, int(info.Size))
		}

		expiry := time.Duration(filesCfg.PresignExpirySec) * time.Second
		u, err := store.PresignGet(c.UserContext(), key, expiry)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found", "")
		}
		return c.Redirect(u, fiber.StatusFound)
	})
}
