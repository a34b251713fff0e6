package storage

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FetchArchive downloads every object in the bucket and writes them into a
// single deflated zip archive at zipPath. Any listing or download failure is
// logged and returned unchanged; a partially written archive is removed so the
// pipeline never runs on truncated input.
func FetchArchive(ctx context.Context, client Client, bucket, zipPath string, log *zap.Logger) error {
	err := fetchArchive(ctx, client, bucket, zipPath)
	if err != nil {
		log.Error("archive fetch failed", zap.String("bucket", bucket), zap.Error(err))
		_ = os.Remove(zipPath)
		return err
	}
	return nil
}

func fetchArchive(ctx context.Context, client Client, bucket, zipPath string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", bucket)
	}

	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create archive %q: %w", zipPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	for object := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if object.Err != nil {
			zw.Close()
			return fmt.Errorf("failed to list bucket %q: %w", bucket, object.Err)
		}

		if err := copyObject(ctx, client, bucket, object.Key, zw); err != nil {
			zw.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return f.Close()
}

func copyObject(ctx context.Context, client Client, bucket, key string, zw *zip.Writer) error {
	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to download object %q: %w", key, err)
	}
	defer obj.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{Name: key, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("failed to add %q to archive: %w", key, err)
	}
	if _, err := io.Copy(w, obj); err != nil {
		return fmt.Errorf("failed to write %q to archive: %w", key, err)
	}
	return nil
}
