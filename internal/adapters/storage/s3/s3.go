package s3

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

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Adapter is an ObjectStore backed by AWS S3 or any S3 compatible endpoint
type Adapter struct {
	client    *s3.Client
	presigner *s3.PresignClient
	config    config.S3Config
	buckets   map[domain.Collection]string
	logger    *slog.Logger
}

var _ port.ObjectStore = (*Adapter)(nil)

// NewAdapter loads the default AWS credential chain and checks that both buckets are reachable
func NewAdapter(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*Adapter, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	a := FromConfig(awsCfg, cfg, logger)
	for _, bucket := range a.buckets {
		if _, err := a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
			return nil, fmt.Errorf("bucket %s is not reachable: %w", bucket, err)
		}
	}
	return a, nil
}

// FromConfig builds the adapter from an already resolved aws.Config
func FromConfig(awsCfg aws.Config, cfg config.S3Config, logger *slog.Logger) *Adapter {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Adapter{
		client:    client,
		presigner: s3.NewPresignClient(client),
		config:    cfg,
		buckets: map[domain.Collection]string{
			domain.CollectionVideos:     cfg.VideoBucket,
			domain.CollectionThumbnails: cfg.ThumbnailBucket,
		},
		logger: logger,
	}
}

func (a *Adapter) bucket(collection domain.Collection) (string, error) {
	bucket, ok := a.buckets[collection]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", collection)
	}
	return bucket, nil
}

// SignedUploadURL presigns a PutObject request valid for ttl
func (a *Adapter) SignedUploadURL(ctx context.Context, collection domain.Collection, fileName string, ttl time.Duration) (string, error) {
	bucket, err := a.bucket(collection)
	if err != nil {
		return "", err
	}

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(fileName),
	}

	presignResp, err := a.presigner.PresignPutObject(ctx, putInput, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign PUT object: %w", err)
	}
	return presignResp.URL, nil
}

// PublicURL returns the unsigned object url, path style when a public base or custom endpoint is configured
func (a *Adapter) PublicURL(collection domain.Collection, fileName string) string {
	bucket := a.buckets[collection]
	key := url.PathEscape(fileName)

	switch {
	case a.config.PublicBaseURL != "":
		return strings.TrimRight(a.config.PublicBaseURL, "/") + "/" + bucket + "/" + key
	case a.config.Endpoint != "":
		return strings.TrimRight(a.config.Endpoint, "/") + "/" + bucket + "/" + key
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, a.config.Region, key)
	}
}

// DeleteObject deletes an object from the bucket of the collection
func (a *Adapter) DeleteObject(ctx context.Context, collection domain.Collection, fileName string) error {
	bucket, err := a.bucket(collection)
	if err != nil {
		return err
	}

	_, err = a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(fileName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	a.logger.Info("object deleted", slog.String("fileName", fileName), slog.String("bucket", bucket))
	return nil
}

func (a *Adapter) CollectionForBucket(bucket string) (domain.Collection, bool) {
	for collection, name := range a.buckets {
		if name == bucket {
			return collection, true
		}
	}
	return "", false
}
