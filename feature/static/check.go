package static

import (
	"context"
	"errors"
	"fmt"
	"path"
)

// RequiredFiles lists the files the site needs: the default document and the
// page subscribers are redirected to.
func RequiredFiles(defaultDocument, successRedirect string) []string {
	files := []string{path.Clean("/" + defaultDocument)}
	if successRedirect != "" {
		files = append(files, path.Clean("/"+successRedirect))
	}
	return files
}

// CheckRequired returns the names in required that the source does not contain.
// Any source failure other than a missing file aborts the check.
func CheckRequired(ctx context.Context, source Source, required []string) ([]string, error) {
	var missing []string
	for _, name := range required {
		entry, err := source.Stat(ctx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			missing = append(missing, name)
		case err != nil:
			return nil, fmt.Errorf("failed to check %s: %w", name, err)
		case entry.IsDir:
			missing = append(missing, name)
		}
	}
	return missing, nil
}
