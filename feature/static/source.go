package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"site-server/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when a path does not resolve to a file.
var ErrNotFound = errors.New("file not found")

// Entry describes a resolved file or directory.
type Entry struct {
	Name  string
	Size  int64
	IsDir bool
}

// Source is a read-only tree of files addressed by rooted slash paths ("/css/site.css").
type Source interface {
	Stat(ctx context.Context, name string) (Entry, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// LocalSource serves files from an afero filesystem.
type LocalSource struct {
	fs afero.Fs
}

// NewLocalSource creates a source over fsys. Callers serving a directory on disk
// should use NewDirSource, which jails every lookup inside the directory.
func NewLocalSource(fsys afero.Fs) *LocalSource {
	return &LocalSource{fs: fsys}
}

// NewDirSource creates a source rooted at dir on the OS filesystem.
func NewDirSource(dir string) *LocalSource {
	return NewLocalSource(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Stat implements Source.
func (s *LocalSource) Stat(_ context.Context, name string) (Entry, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return Entry{}, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return Entry{Name: name, Size: info.Size(), IsDir: info.IsDir()}, nil
}

// Open implements Source.
func (s *LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

// BucketSource serves files stored as objects in a bucket.
// A "directory" is recognised by its folder marker object ("docs/").
type BucketSource struct {
	client storage.Client
	cfg    storage.Config
}

// NewBucketSource creates a source over the configured bucket and prefix.
func NewBucketSource(client storage.Client, cfg storage.Config) *BucketSource {
	return &BucketSource{client: client, cfg: cfg}
}

// Stat implements Source.
func (s *BucketSource) Stat(ctx context.Context, name string) (Entry, error) {
	key := s.cfg.ObjectKey(name)
	info, err := s.client.StatObject(ctx, s.cfg.Bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return Entry{Name: name, Size: info.Size}, nil
	}
	if !storage.IsNotFound(err) {
		return Entry{}, fmt.Errorf("failed to stat object %s: %w", key, err)
	}

	if _, dirErr := s.client.StatObject(ctx, s.cfg.Bucket, key+"/", minio.StatObjectOptions{}); dirErr == nil {
		return Entry{Name: name, IsDir: true}, nil
	}
	return Entry{}, fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Open implements Source.
func (s *BucketSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	key := s.cfg.ObjectKey(name)
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return obj, nil
}
