// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations ddproc needs: checking bucket existence, listing the donation
// exports, and downloading them. The abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Archive Fetch
//
// FetchArchive mirrors every object in the configured bucket into a local
// data.zip, which is the sole input of the extraction pipeline. The pipeline
// itself never touches the network.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.FetchArchive(ctx, client, "donations", "data.zip", log)
package storage
