package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-auth-api/internal/infrastructure/smtp"
	"github.com/go-auth-api/internal/infrastructure/sns"
)

// Notifier sends transactional emails. Delivery is best-effort: callers
// never roll back committed state when a send fails.
type Notifier interface {
	SendVerificationEmail(ctx context.Context, to, code string) error
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPasswordResetEmail(ctx context.Context, to, resetURL string) error
	SendPasswordResetSuccessEmail(ctx context.Context, to string) error
}

type notifier struct {
	mailer smtp.Mailer
	// retry receives payloads that failed SMTP delivery; nil disables
	// dead-lettering.
	retry sns.RetryPublisher
}

func New(mailer smtp.Mailer, retry sns.RetryPublisher) Notifier {
	return &notifier{mailer: mailer, retry: retry}
}

func (n *notifier) SendVerificationEmail(ctx context.Context, to, code string) error {
	return n.send(ctx, to, "Verify Your Email", fmt.Sprintf(verificationEmailTemplate, code))
}

func (n *notifier) SendWelcomeEmail(ctx context.Context, to, name string) error {
	return n.send(ctx, to, "Welcome!", fmt.Sprintf(welcomeEmailTemplate, name))
}

func (n *notifier) SendPasswordResetEmail(ctx context.Context, to, resetURL string) error {
	return n.send(ctx, to, "Reset your password", fmt.Sprintf(passwordResetEmailTemplate, resetURL))
}

func (n *notifier) SendPasswordResetSuccessEmail(ctx context.Context, to string) error {
	return n.send(ctx, to, "Password Reset Successful", passwordResetSuccessEmailTemplate)
}

func (n *notifier) send(ctx context.Context, to, subject, body string) error {
	err := n.mailer.SendEmail(to, subject, body)
	if err == nil {
		return nil
	}
	if n.retry != nil {
		payload, _ := json.Marshal(map[string]string{"to": to, "subject": subject, "body": body})
		if pubErr := n.retry.Publish(ctx, "email-delivery-retry", string(payload)); pubErr != nil {
			slog.Error("dead-letter publish failed", "to", to, "subject", subject, "err", pubErr)
		}
	}
	return fmt.Errorf("send email %q to %s: %w", subject, to, err)
}
