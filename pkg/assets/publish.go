package assets

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the subset of the S3 client the publisher uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads built assets to an S3 bucket.
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	pub := assets.NewPublisher(s3.NewFromConfig(cfg), "my-bucket", "static/")
//	err := pub.PublishDir(ctx, "dist")
type Publisher struct {
	client s3API
	bucket string
	prefix string
}

// NewPublisher creates a Publisher targeting bucket with the given key
// prefix (e.g. "static/").
func NewPublisher(client s3API, bucket, prefix string) *Publisher {
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// PublishDir uploads every regular file directly under dir. Fingerprinted
// files get an immutable cache policy since their names change with
// content; everything else (the manifest included) must be revalidated.
func (p *Publisher) PublishDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := p.publishFile(ctx, filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (p *Publisher) publishFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)

	cacheControl := "no-cache"
	if looksFingerprinted(name) {
		cacheControl = "public, max-age=31536000, immutable"
	}

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(p.prefix + name),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(cacheControl),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", name, err)
	}
	return nil
}
