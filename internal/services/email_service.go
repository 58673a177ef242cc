package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/logger"
)

// EmailService sends transactional mail through Resend. All sends are
// best-effort; callers log and continue on failure.
type EmailService struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewEmailService(apiKey, from string) *EmailService {
	return &EmailService{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: logger.Log,
	}
}

// SendRewardEarned notifies a member that they earned free service months.
func (s *EmailService) SendRewardEarned(ctx context.Context, toEmail string, monthsEarned int32) error {
	plural := ""
	if monthsEarned != 1 {
		plural = "s"
	}
	subject := fmt.Sprintf("You've earned %d free month%s!", monthsEarned, plural)
	html := fmt.Sprintf(`
		<h2>Congratulations!</h2>
		<p>Your loyalty just paid off. You've earned <strong>%d free month%s</strong> of service.</p>
		<p>Log in to your account to apply the credit to your subscription, or share it with a friend as a referral.</p>
		<p>Thank you for being a loyal member.</p>
	`, monthsEarned, plural)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}
	sent, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send reward email: %w", err)
	}
	s.logger.Info("Sent reward notification",
		zap.String("to", toEmail),
		zap.String("email_id", sent.Id))
	return nil
}
