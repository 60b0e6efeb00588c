package subscribe

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new subscribe feature with the default parser chain.
func NewFeature(cfg Config, creds *Credentials, logger *zap.Logger) *Feature {
	svc := NewService(NewClient(cfg), creds, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, DefaultChain())}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "subscribe"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
