package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the part of *s3.Client used by S3Store.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store uploads exported files to an S3 bucket.
//
// Example usage:
//
//	client := export.NewS3Client(export.S3ClientConfig{Region: "eu-west-1"})
//	store := export.NewS3Store(client, "my-site", "preview/")
type S3Store struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Store creates a store writing to bucket below prefix.
func NewS3Store(client PutObjectAPI, bucket, prefix string) *S3Store {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &S3Store{
		client: client,
		bucket: bucket,
		prefix: strings.TrimLeft(prefix, "/"),
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func (s *S3Store) WithCacheControl(v string) *S3Store {
	s.cacheControl = v
	return s
}

// Put uploads body as prefix+key.
func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) error {
	key, err := cleanKey(key)
	if err != nil {
		return err
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.prefix + key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"export-time": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if s.cacheControl != "" {
		in.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 upload %s failed: %w", key, err)
	}
	return nil
}

// S3ClientConfig configures NewS3Client.
type S3ClientConfig struct {
	// Region is the bucket region. Defaults to $AWS_REGION.
	Region string

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string

	// PathStyle addresses buckets by path instead of virtual host.
	PathStyle bool
}

// NewS3Client creates an S3 client. Credentials are read from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN when
// each request is signed.
func NewS3Client(config S3ClientConfig) *s3.Client {
	region := config.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}

	opts := s3.Options{
		Region:       region,
		Credentials:  aws.CredentialsProviderFunc(envCredentials),
		UsePathStyle: config.PathStyle,
	}
	if config.Endpoint != "" {
		opts.BaseEndpoint = aws.String(config.Endpoint)
	}
	return s3.New(opts)
}

func envCredentials(ctx context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, fmt.Errorf("export: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}
