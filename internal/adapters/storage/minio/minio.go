package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"vidshare/internal/config"
	"vidshare/internal/core/domain"
	"vidshare/internal/core/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// publicReadPolicy lets anyone download objects but not list or write the bucket
const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [
		{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}
	]
}`

// Adapter is an adapter for minio
type Adapter struct {
	client  *minio.Client
	config  config.MinioConfig
	buckets map[domain.Collection]string
	logger  *slog.Logger
}

var _ port.ObjectStore = (*Adapter)(nil)

// NewAdapter returns Adapter, creating the video and thumbnail buckets with a public read policy when missing
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	a := &Adapter{
		client: client,
		config: cfg,
		buckets: map[domain.Collection]string{
			domain.CollectionVideos:     cfg.VideoBucket,
			domain.CollectionThumbnails: cfg.ThumbnailBucket,
		},
		logger: logger,
	}

	for _, bucket := range a.buckets {
		if err := a.ensureBucket(ctx, bucket); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Adapter) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := a.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check if bucket %s exists: %w", bucket, err)
	}
	if exists {
		return nil
	}

	if err := a.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	if err := a.client.SetBucketPolicy(ctx, bucket, fmt.Sprintf(publicReadPolicy, bucket)); err != nil {
		return fmt.Errorf("failed to set public policy on bucket %s: %w", bucket, err)
	}

	a.logger.Info("bucket created", slog.String("bucket", bucket))
	return nil
}

func (a *Adapter) bucket(collection domain.Collection) (string, error) {
	bucket, ok := a.buckets[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	return bucket, nil
}

// SignedUploadURL returns a presigned PUT url for the object
func (a *Adapter) SignedUploadURL(ctx context.Context, collection domain.Collection, fileName string, ttl time.Duration) (string, error) {
	bucket, err := a.bucket(collection)
	if err != nil {
		return "", err
	}

	presignedURL, err := a.client.PresignedPutObject(ctx, bucket, fileName, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to generate pre-signed URL: %w", err)
	}
	return presignedURL.String(), nil
}

// PublicURL returns the stable, unsigned download url of the object
func (a *Adapter) PublicURL(collection domain.Collection, fileName string) string {
	base := a.config.PublicBaseURL
	if base == "" {
		scheme := "http"
		if a.config.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + a.config.Endpoint
	}
	return strings.TrimRight(base, "/") + "/" + a.buckets[collection] + "/" + url.PathEscape(fileName)
}

// DeleteObject deletes an object from storage
func (a *Adapter) DeleteObject(ctx context.Context, collection domain.Collection, fileName string) error {
	bucket, err := a.bucket(collection)
	if err != nil {
		return err
	}

	if err := a.client.RemoveObject(ctx, bucket, fileName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted",
		slog.String("fileName", fileName),
		slog.String("bucket", bucket))

	return nil
}

// CollectionForBucket maps a bucket name from a notification back to its collection
func (a *Adapter) CollectionForBucket(bucket string) (domain.Collection, bool) {
	for collection, name := range a.buckets {
		if name == bucket {
			return collection, true
		}
	}
	return "", false
}
