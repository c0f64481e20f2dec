// Package mail sends the two transactional emails the service needs:
// registration codes and invitation links. Delivery is behind a small
// interface so tests and local development can swap SMTP out.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/opencrew/taskhub/pkg/slogx"
)

type Mailer interface {
	// SendVerificationCode emails a registration code to an address that
	// is not yet an account.
	SendVerificationCode(ctx context.Context, to, name, code string) error

	// SendInvitation emails an invitation link containing the raw token.
	SendInvitation(ctx context.Context, to, orgName, token string) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Addr    string // host:port
	From    string
	BaseURL string // public URL of the frontend, used to build invitation links
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	body := fmt.Sprintf("Hi %s,\r\n\r\nYour verification code is %s. It expires in 10 minutes.\r\n", name, code)
	return m.send(ctx, to, "Verify your email", body)
}

func (m *SMTPMailer) SendInvitation(ctx context.Context, to, orgName, token string) error {
	link := strings.TrimRight(m.BaseURL, "/") + "/invitations/accept?token=" + token
	body := fmt.Sprintf("You have been invited to join %s.\r\n\r\nAccept within 7 days: %s\r\n", orgName, link)
	return m.send(ctx, to, "You're invited to "+orgName, body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.From, to, subject, body)
	if err := smtp.SendMail(m.Addr, nil, m.From, []string{to}, []byte(msg)); err != nil {
		slogx.FromContext(ctx).Error("failed to send mail",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// LogMailer writes mail to the log instead of sending it. Used in local
// development and tests.
type LogMailer struct{}

func (LogMailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	slogx.FromContext(ctx).Info("mail: verification code",
		slog.String("to", to),
		slog.String("code", code),
	)
	return nil
}

func (LogMailer) SendInvitation(ctx context.Context, to, orgName, token string) error {
	slogx.FromContext(ctx).Info("mail: invitation",
		slog.String("to", to),
		slog.String("org", orgName),
		slog.String("token", token),
	)
	return nil
}
