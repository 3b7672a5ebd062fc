// Package mail sends transactional e-mail through Amazon SES.
package mail

import (
	"context"
	"fmt"

	"eventos_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	client sesAPI
	sender string
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(cfg aws.Config, sender string) *SESMailer {
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}
}

const resetText = `Hi %s,

We received a request to reset your password. Open the link below to choose a new one:

%s

If you did not ask for this, you can ignore this message.`

func (m *SESMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String("Reset your password"), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(fmt.Sprintf(resetText, name, resetURL)), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %w", err)
	}
	return nil
}
