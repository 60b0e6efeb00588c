// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that the static site can be served straight
// from an AWS S3 or self-hosted MinIO bucket instead of the local disk.
//
// # Client Interface
//
// The Client interface exposes only the read operations the static responder
// needs, which keeps it easy to mock (see core/storage/mocks).
//
//   - StatObject: Fetches size and content metadata, and detects missing keys.
//   - GetObject: Retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	info, err := client.StatObject(ctx, cfg.Bucket, cfg.ObjectKey("new.html"), minio.StatObjectOptions{})
package storage
