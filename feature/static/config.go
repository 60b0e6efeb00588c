package static

// Source kinds accepted by Config.Source.
const (
	SourceLocal  = "local"
	SourceBucket = "bucket"
)

// Config holds configuration for the static file responder.
type Config struct {
	// Source selects where files are read from (local, bucket).
	Source string `mapstructure:"source" default:"local"`
	// Root is the directory served when Source is local.
	Root string `mapstructure:"root" default:"public"`
	// DefaultDocument is served for the root path and for directories.
	DefaultDocument string `mapstructure:"default_document" default:"new.html"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceLocal, SourceBucket:
		return true
	default:
		return false
	}
}
