// Package static implements the static file responder.
//
// URL paths are mapped onto a Source, which is either a directory on disk
// (LocalSource, jailed with afero.BasePathFs) or a bucket in S3/MinIO
// (BucketSource). The root path, paths ending in "/" and directories resolve to
// the configured default document.
//
// # Responses
//
//   - 200: file bytes, Content-Type taken from a fixed extension table
//     (application/octet-stream otherwise).
//   - 404: "Not Found" as text/plain.
//   - 500: "Internal Server Error" as text/plain when the source fails.
//
// # HTTP Endpoints
//
//   - ANY /* : Serve a file. Registered last, as the catch-all route.
package static
