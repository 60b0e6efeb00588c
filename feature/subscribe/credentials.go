package subscribe

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// ErrCredentialMissing is returned when neither the configured value nor the key file yields a key.
var ErrCredentialMissing = errors.New("newsletter API key not found: set BEEHIIV_API_KEY or provide the API key file")

// Credentials resolves the provider API key once and reuses it for the process lifetime.
// Failed resolutions are not cached, so a key file added later is picked up.
type Credentials struct {
	value string
	file  string
	fs    afero.Fs

	mu     sync.Mutex
	cached string
}

// NewCredentials creates a resolver preferring value over the contents of file.
func NewCredentials(value, file string, fsys afero.Fs) *Credentials {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Credentials{value: value, file: file, fs: fsys}
}

// Resolve returns the API key.
func (c *Credentials) Resolve() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != "" {
		return c.cached, nil
	}

	if v := strings.TrimSpace(c.value); v != "" {
		c.cached = v
		return c.cached, nil
	}

	if c.file == "" {
		return "", ErrCredentialMissing
	}

	raw, err := afero.ReadFile(c.fs, c.file)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialMissing, err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrCredentialMissing, c.file)
	}

	c.cached = key
	return c.cached, nil
}
