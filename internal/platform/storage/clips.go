package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

const clipExtension = ".mp4"

// LocalClipStore serves bonus clips from a directory on disk. The directory
// itself is exposed by the HTTP layer under urlPrefix.
type LocalClipStore struct {
	dir       string
	urlPrefix string
}

func NewLocalClipStore(dir, urlPrefix string) *LocalClipStore {
	return &LocalClipStore{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
	}
}

func (s *LocalClipStore) ListClipFiles(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading clip directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != clipExtension {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}

func (s *LocalClipStore) ClipURL(ctx context.Context, file string) (string, error) {
	return s.urlPrefix + "/" + file, nil
}

// MinIOClipStore serves bonus clips from an object-store bucket via
// presigned URLs.
type MinIOClipStore struct {
	client *minio.Client
	bucket string
	expiry time.Duration
}

func NewMinIOClipStore(client *minio.Client, bucket string) *MinIOClipStore {
	return &MinIOClipStore{
		client: client,
		bucket: bucket,
		expiry: time.Hour,
	}
}

func (s *MinIOClipStore) ListClipFiles(ctx context.Context) ([]string, error) {
	var files []string
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, fmt.Errorf("listing clip bucket: %w", object.Err)
		}
		if path.Ext(object.Key) != clipExtension {
			continue
		}
		files = append(files, object.Key)
	}
	return files, nil
}

func (s *MinIOClipStore) ClipURL(ctx context.Context, file string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, file, s.expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presigning clip url: %w", err)
	}
	return u.String(), nil
}
