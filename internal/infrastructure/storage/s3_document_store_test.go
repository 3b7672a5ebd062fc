package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3DocumentStore_Put(t *testing.T) {
	fake := &fakeS3{}
	store := newS3DocumentStore(fake, "exports", "https://cdn.example.com/")

	url, err := store.Put(context.Background(), "quotes/Quote-EV-1.pdf", "application/pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/quotes/Quote-EV-1.pdf", url)
	assert.Equal(t, "exports", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "quotes/Quote-EV-1.pdf", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("%PDF"), fake.body)
}

func TestS3DocumentStore_PutWithoutPublicURL(t *testing.T) {
	store := newS3DocumentStore(&fakeS3{}, "exports", "")

	url, err := store.Put(context.Background(), "k.pdf", "application/pdf", nil)
	require.NoError(t, err)
	assert.Equal(t, "s3://exports/k.pdf", url)
}

func TestS3DocumentStore_PutError(t *testing.T) {
	store := newS3DocumentStore(&fakeS3{err: errors.New("denied")}, "exports", "")

	_, err := store.Put(context.Background(), "k.pdf", "application/pdf", nil)
	assert.ErrorContains(t, err, "denied")
}
