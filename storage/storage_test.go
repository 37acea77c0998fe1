package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/padraicbc/paddock/config"
)

type fakeS3 struct {
	in   *s3.PutObjectInput
	body string
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	u := newS3Uploader(fake, "logos", "https://cdn.example/assets/")

	got, err := u.Upload(context.Background(), "competitions/f1/logo.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/assets/competitions/f1/logo.png", got)
	assert.Equal(t, "logos", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "competitions/f1/logo.png", aws.ToString(fake.in.Key))
	assert.Equal(t, "image/png", aws.ToString(fake.in.ContentType))
	assert.Equal(t, "png", fake.body)
}

func TestUpload_Error(t *testing.T) {
	u := newS3Uploader(&fakeS3{err: errors.New("denied")}, "logos", "https://cdn.example")

	_, err := u.Upload(context.Background(), "k", "image/png", strings.NewReader(""))
	assert.ErrorContains(t, err, "denied")
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"https://cdn.example", "teams/1.png", "https://cdn.example/teams/1.png"},
		{"https://cdn.example/", "/teams/1.png", "https://cdn.example/teams/1.png"},
		{"https://cdn.example/a", "teams/1.png", "https://cdn.example/a/teams/1.png"},
	}
	for _, tt := range tests {
		got, err := PublicURL(tt.base, tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), appconfig.S3Config{})
	assert.Error(t, err)
}
