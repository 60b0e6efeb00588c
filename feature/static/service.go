package static

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"go.uber.org/zap"
)

// Service resolves URL paths against a Source.
type Service struct {
	source          Source
	defaultDocument string
	logger          *zap.Logger
}

// NewService creates a new static file service.
func NewService(source Source, defaultDocument string, logger *zap.Logger) *Service {
	if defaultDocument == "" {
		defaultDocument = "new.html"
	}
	return &Service{
		source:          source,
		defaultDocument: defaultDocument,
		logger:          logger,
	}
}

// Resolve maps a URL path to a file in the source.
// The root path, paths ending in "/" and directories resolve to the default document.
// The returned name is always rooted and clean, so it cannot escape the source.
func (s *Service) Resolve(ctx context.Context, urlPath string) (Entry, error) {
	name := path.Clean("/" + urlPath)
	if name == "/" || strings.HasSuffix(urlPath, "/") {
		name = path.Join(name, s.defaultDocument)
	}

	entry, err := s.source.Stat(ctx, name)
	if err != nil {
		return Entry{}, err
	}
	if entry.IsDir {
		name = path.Join(name, s.defaultDocument)
		if entry, err = s.source.Stat(ctx, name); err != nil {
			return Entry{}, err
		}
	}
	if entry.IsDir {
		return Entry{}, fmt.Errorf("%s is a directory: %w", name, ErrNotFound)
	}
	return entry, nil
}

// Open opens a resolved entry for reading.
func (s *Service) Open(ctx context.Context, entry Entry) (io.ReadCloser, error) {
	return s.source.Open(ctx, entry.Name)
}
