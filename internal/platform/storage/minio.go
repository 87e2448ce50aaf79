package storage

import (
	"context"
	"fmt"

	"github.com/minhtran/phimhub/internal/platform/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// InitMinIO connects to the object store and makes sure the clips bucket
// exists. Creating the bucket is idempotent.
func InitMinIO(cfg config.MinIOConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketClips)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket '%s': %w", cfg.BucketClips, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketClips, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket '%s': %w", cfg.BucketClips, err)
		}
	}

	return client, nil
}
