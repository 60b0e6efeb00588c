package subscribe

import (
	"errors"
	"net/url"
	"strings"

	"site-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for newsletter subscriptions.
type Handler struct {
	service *Service
	parsers Chain
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, parsers Chain) *Handler {
	return &Handler{service: service, parsers: parsers}
}

const apiPrefix = "/api"

// RegisterRoutes registers the subscribe route and claims the rest of /api/.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group(apiPrefix)
	group.All("/subscribe", h.HandleSubscribe)
	group.All("/*", h.HandleNotFound)
}

// HandleSubscribe forwards a subscription to the newsletter provider.
// @Summary Subscribe to the newsletter
// @Description Accepts a JSON body, a form body or query parameters. Redirects to the success page once the provider accepts the subscription.
// @Tags subscribe
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Subscriber email"
// @Param firstName formData string false "Subscriber first name (also first_name)"
// @Success 302 {string} string "Redirect to the success page"
// @Failure 400 {object} map[string]string "Email is required"
// @Failure 405 {object} map[string]string "Method not allowed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/subscribe [post]
func (h *Handler) HandleSubscribe(c *fiber.Ctx) error {
	// Lenient routers also match "/api/subscribe/" and other casings.
	if c.Path() != c.Route().Path {
		return h.HandleNotFound(c)
	}

	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
	}

	l := logger.WithRayID(h.service.logger, c)

	query, qErr := url.ParseQuery(string(c.Request().URI().QueryString()))
	if qErr != nil {
		l.Debug("Malformed query string, using the values that parsed", zap.Error(qErr))
	}
	req, err := h.parsers.Parse(Input{Body: c.Body(), Query: query})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
	}

	err = h.service.Subscribe(c.Context(), req)
	if err == nil {
		l.Info("Subscription forwarded", zap.Bool("first_name", req.FirstName != ""))
		return c.Redirect(h.service.SuccessRedirect(), fiber.StatusFound)
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		l.Error("Provider rejected subscription",
			zap.Int("status", upErr.StatusCode),
			zap.ByteString("body", upErr.Body),
		)
		return c.Status(upErr.StatusCode).JSON(fiber.Map{"error": upErr.Message})
	}

	l.Error("Subscribe handler error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}

// HandleNotFound answers every other path below /api/. A bare /api is not an
// API path and falls through to the next route.
func (h *Handler) HandleNotFound(c *fiber.Ctx) error {
	if !strings.HasPrefix(c.Path(), apiPrefix+"/") {
		return c.Next()
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusNotFound).SendString("Not Found")
}
