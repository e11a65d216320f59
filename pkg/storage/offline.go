package storage

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"serverless-api-template/pkg/log"
)

// offlineClient stands in for S3 when running locally: reads return an
// empty object and writes are only logged.
type offlineClient struct {
	l log.Logger
}

func (c offlineClient) GetObject(ctx context.Context, params *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	c.l.Debugf(ctx, "storage.offline: GetObject %s/%s", aws.ToString(params.Bucket), aws.ToString(params.Key))
	return &s3aws.GetObjectOutput{Body: io.NopCloser(strings.NewReader(""))}, nil
}

func (c offlineClient) PutObject(ctx context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	c.l.Debugf(ctx, "storage.offline: PutObject %s/%s", aws.ToString(params.Bucket), aws.ToString(params.Key))
	return &s3aws.PutObjectOutput{}, nil
}
