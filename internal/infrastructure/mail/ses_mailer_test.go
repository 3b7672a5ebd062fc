package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("m-1")}, nil
}

func TestSESMailer_SendPasswordReset(t *testing.T) {
	fake := &fakeSES{}
	m := &SESMailer{client: fake, sender: "no-reply@example.com"}

	err := m.SendPasswordReset(context.Background(), "ana@example.com", "Ana", "https://site/reset?token=abc")
	require.NoError(t, err)

	assert.Equal(t, "no-reply@example.com", aws.ToString(fake.input.Source))
	assert.Equal(t, []string{"ana@example.com"}, fake.input.Destination.ToAddresses)
	assert.Contains(t, aws.ToString(fake.input.Message.Body.Text.Data), "https://site/reset?token=abc")
	assert.Contains(t, aws.ToString(fake.input.Message.Body.Text.Data), "Hi Ana")
}

func TestSESMailer_Error(t *testing.T) {
	m := &SESMailer{client: &fakeSES{err: errors.New("throttled")}, sender: "x@example.com"}
	err := m.SendPasswordReset(context.Background(), "a@b.c", "A", "u")
	assert.ErrorContains(t, err, "throttled")
}
