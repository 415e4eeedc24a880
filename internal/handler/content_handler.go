package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/portfolio-go-api/internal/content"
)

// ContentHandler serves the static portfolio content consumed by the frontend.
type ContentHandler struct {
	catalog content.Catalog
	logger  zerolog.Logger
}

// NewContentHandler constructs a content handler over the given catalog.
func NewContentHandler(catalog content.Catalog, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		catalog: catalog,
		logger:  logger.With().Str("component", "content_handler").Logger(),
	}
}

// Register wires the public content routes.
func (h *ContentHandler) Register(router fiber.Router) {
	router.Get("/profile", h.profile)
	router.Get("/projects", h.projects)
}

func (h *ContentHandler) profile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.catalog.Profile)
}

func (h *ContentHandler) projects(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.catalog.Projects)
}
