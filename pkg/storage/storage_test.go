package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"serverless-api-template/pkg/log"
	"serverless-api-template/pkg/storage"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3aws.GetObjectInput, _ ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3aws.GetObjectOutput)
	return out, args.Error(1)
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3aws.PutObjectInput, _ ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3aws.PutObjectOutput)
	return out, args.Error(1)
}

func body(s string) *s3aws.GetObjectOutput {
	return &s3aws.GetObjectOutput{Body: io.NopCloser(strings.NewReader(s))}
}

func newStorage(t *testing.T, client storage.S3Client) *storage.Storage {
	t.Helper()
	s, err := storage.New(context.Background(), log.NewNop(), storage.Config{Bucket: "bucket"}, storage.WithS3Client(client))
	require.NoError(t, err)
	return s
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := storage.New(context.Background(), log.NewNop(), storage.Config{})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	_, err = storage.New(context.Background(), log.NewNop(), storage.Config{Bucket: "b"})
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	s, err := storage.New(context.Background(), log.NewNop(), storage.Config{Bucket: "b", Offline: true})
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestFetchJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes object", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3aws.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == "bucket" && aws.ToString(in.Key) == "data.json"
		})).Return(body(`{"name":"x","count":2}`), nil)

		var out struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		err := newStorage(t, client).FetchJSON(context.Background(), "data.json", &out)
		require.NoError(t, err)
		assert.Equal(t, "x", out.Name)
		assert.Equal(t, 2, out.Count)
		client.AssertExpectations(t)
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(body("  \n"), nil)

		var out map[string]any
		err := newStorage(t, client).FetchJSON(context.Background(), "k", &out)
		assert.ErrorIs(t, err, storage.ErrEmptyFile)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(body("{nope"), nil)

		var out map[string]any
		err := newStorage(t, client).FetchJSON(context.Background(), "k", &out)
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrEmptyFile)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchKey{})

		var out map[string]any
		err := newStorage(t, client).FetchJSON(context.Background(), "k", &out)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"})

		_, err := newStorage(t, client).Download(context.Background(), "k")
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})
}

func TestUploadJSON(t *testing.T) {
	t.Parallel()

	t.Run("uploads encoded value", func(t *testing.T) {
		t.Parallel()

		var sent string
		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3aws.PutObjectInput) bool {
			return aws.ToString(in.Key) == "out.json" && aws.ToString(in.ContentType) == "application/json"
		})).Run(func(args mock.Arguments) {
			in := args.Get(1).(*s3aws.PutObjectInput)
			b, _ := io.ReadAll(in.Body)
			sent = string(b)
		}).Return(&s3aws.PutObjectOutput{ETag: aws.String(`"abc"`)}, nil)

		res, err := newStorage(t, client).UploadJSON(context.Background(), "out.json", map[string]int{"a": 1})
		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode)
		assert.Equal(t, "out.json", res.Key)
		assert.Equal(t, `"abc"`, res.ETag)
		assert.Equal(t, `{"a":1}`, sent)
		client.AssertNumberOfCalls(t, "PutObject", 1)
	})

	t.Run("bucket missing", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, &types.NoSuchBucket{})

		_, err := newStorage(t, client).UploadJSON(context.Background(), "k", 1)
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
	})

	t.Run("unencodable value", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		_, err := newStorage(t, client).UploadJSON(context.Background(), "k", func() {})
		require.Error(t, err)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	t.Run("other failure", func(t *testing.T) {
		t.Parallel()

		client := &MockS3Client{}
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := newStorage(t, client).Upload(context.Background(), storage.UploadInput{Key: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestOffline(t *testing.T) {
	t.Parallel()

	s, err := storage.New(context.Background(), log.NewNop(), storage.Config{Bucket: "b", Offline: true})
	require.NoError(t, err)

	content, err := s.Download(context.Background(), "k")
	require.NoError(t, err)
	assert.Empty(t, content)

	var out map[string]any
	assert.ErrorIs(t, s.FetchJSON(context.Background(), "k", &out), storage.ErrEmptyFile)

	res, err := s.UploadJSON(context.Background(), "k", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)
}
