package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"car-selling-service/internal/config"
	"car-selling-service/internal/domain/listing"
)

// Store uploads listing images to an S3-compatible object store and returns
// public object URLs.
type Store struct {
	client   *s3.Client
	endpoint string
	bucket   string
}

func NewStore(ctx context.Context, cfg *config.StorageConfig) (*Store, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Store{
		client:   client,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		bucket:   cfg.Bucket,
	}, nil
}

var _ listing.ImageStore = (*Store)(nil)

func (s *Store) Upload(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	key := storageKey(folder, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key), nil
}

// storageKey builds a collision-free object key under folder, keeping the
// original file extension.
func storageKey(folder, filename string) string {
	d := time.Now()
	return fmt.Sprintf("%s/%d/%d/%d/%s%s",
		folder, d.Year(), d.Month(), d.Day(), uuid.New(), path.Ext(filename))
}
