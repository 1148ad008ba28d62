// Package blob stores uploaded vision-board images in S3 under
// randomized object keys and returns their public URLs.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"wedding-planner/internal/config"
)

// Uploader writes objects to a single bucket under a key prefix.
type Uploader struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

// New builds an Uploader from the ambient AWS credential chain.
func New(ctx context.Context, cfg config.BlobConfig) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Uploader{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
	}, nil
}

// Upload stores the body under a fresh randomized key derived from the
// original filename's extension and returns the object's public URL.
func (u *Uploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := u.objectKey(filename)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return u.objectURL(key), nil
}

func (u *Uploader) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return u.prefix + "/" + uuid.NewString() + ext
}

func (u *Uploader) objectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
