package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryArchiver(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryArchiver()

	_, err := a.PresignedURL(ctx, "missing.csv")
	assert.Error(t, err)

	require.NoError(t, a.Put(ctx, "exports/a.csv", "text/csv", []byte("id\n")))
	url, err := a.PresignedURL(ctx, "exports/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "memory://exports/a.csv", url)

	body, ok := a.Object("exports/a.csv")
	assert.True(t, ok)
	assert.Equal(t, "id\n", string(body))
}

func TestS3Archiver_PresignsWithoutNetwork(t *testing.T) {
	a, err := NewS3Archiver(context.Background(), S3Config{
		Region:          "eu-north-1",
		Bucket:          "postal-exports",
		AccessKeyID:     "AKIATEST",
		SecretAccessKey: "secret",
		PresignTTL:      time.Minute,
	})
	require.NoError(t, err)

	url, err := a.PresignedURL(context.Background(), "exports/postal-codes.csv")
	require.NoError(t, err)
	assert.Contains(t, url, "postal-exports")
	assert.Contains(t, url, "X-Amz-Signature")
}
