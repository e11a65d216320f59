package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"serverless-api-template/pkg/log"
)

// S3Client is the subset of the S3 API used by Storage.
type S3Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// Config configures the object storage.
type Config struct {
	Bucket         string
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // S3-compatible services such as MinIO
	ForcePathStyle bool
	// Offline swaps the S3 client for one that only logs.
	Offline bool
}

// Option configures Storage.
type Option func(*options)

type options struct {
	httpClient *http.Client
	s3Client   S3Client
}

// WithS3Client sets a pre-configured S3 client, mainly for tests.
func WithS3Client(client S3Client) Option {
	return func(o *options) {
		o.s3Client = client
	}
}

// WithHTTPClient sets the HTTP client used for S3 requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// Storage reads and writes objects in a single bucket.
type Storage struct {
	l      log.Logger
	client S3Client
	bucket string
}

// New creates a Storage for cfg.Bucket.
func New(ctx context.Context, l log.Logger, cfg Config, opts ...Option) (*Storage, error) {
	if cfg.Bucket == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.s3Client
	switch {
	case client != nil:
	case cfg.Offline:
		client = offlineClient{l: l}
	default:
		if cfg.Region == "" {
			return nil, ErrInvalidConfig
		}
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if o.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
		}

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &Storage{l: l, client: client, bucket: cfg.Bucket}, nil
}

// Download returns the content of key as a string.
func (s *Storage) Download(ctx context.Context, key string) (string, error) {
	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", classifyS3Error(err, "download")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("storage: read %s: %w", key, err)
	}
	return string(data), nil
}

// FetchJSON downloads key and decodes it into out.
func (s *Storage) FetchJSON(ctx context.Context, key string, out any) error {
	content, err := s.Download(ctx, key)
	if err != nil {
		return fmt.Errorf("storage: fetch %s: %w", key, err)
	}
	if len(bytes.TrimSpace([]byte(content))) == 0 {
		return fmt.Errorf("storage: fetch %s: %w", key, ErrEmptyFile)
	}
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("storage: decode %s: %w", key, err)
	}
	return nil
}

// Upload stores in.Body under in.Key.
func (s *Storage) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	out, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(in.Key),
		Body:        bytes.NewReader(in.Body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return UploadResult{}, classifyS3Error(err, "upload")
	}

	return UploadResult{
		StatusCode: http.StatusOK,
		Key:        in.Key,
		ETag:       aws.ToString(out.ETag),
	}, nil
}

// UploadJSON serializes v and stores it under key.
func (s *Storage) UploadJSON(ctx context.Context, key string, v any) (UploadResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return UploadResult{}, fmt.Errorf("storage: encode %s: %w", key, err)
	}
	return s.Upload(ctx, UploadInput{Key: key, Body: body, ContentType: "application/json"})
}
