package static

import (
	"errors"

	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const textPlain = "text/plain; charset=utf-8"

// Handler serves static files over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catch-all file route for every method. It must be
// registered after every other feature.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.All("/*", h.HandleFile)
}

// HandleFile resolves the request path and streams the file.
func (h *Handler) HandleFile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()

	entry, err := h.service.Resolve(ctx, c.Path())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return sendText(c, fiber.StatusNotFound, "Not Found")
		}
		l.Error("Static file error", zap.String("path", c.Path()), zap.Error(err))
		return sendText(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	body, err := h.service.Open(ctx, entry)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return sendText(c, fiber.StatusNotFound, "Not Found")
		}
		l.Error("Static file error", zap.String("file", entry.Name), zap.Error(err))
		return sendText(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	c.Status(fiber.StatusOK)
	c.Set(fiber.HeaderContentType, ContentType(entry.Name))
	// The response body takes ownership of body and closes it once written.
	return c.SendStream(body, int(entry.Size))
}

func sendText(c *fiber.Ctx, status int, msg string) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, textPlain)
	return c.SendString(msg)
}
