// Package mailer sends transactional email through Resend. Delivery is
// best-effort everywhere: callers decide whether a send failure matters.
package mailer

import (
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

type ContactEmail struct {
	To            string
	ReplyTo       string
	SenderName    string
	RecipientName string
	Subject       string
	Message       string
}

type ReminderEmail struct {
	To         string
	Name       string
	TeamName   string // empty for personal-profile reminders
	ProfileURL string
}

// Mailer is what the contact relay and the reminder sweep depend on.
type Mailer interface {
	SendContactMessage(e ContactEmail) error
	SendFreshnessReminder(e ReminderEmail) error
}

// ResendMailer is the production implementation.
type ResendMailer struct {
	client  *resend.Client
	from    string
	siteURL string
}

func NewResendMailer(apiKey, from, siteURL string) *ResendMailer {
	return &ResendMailer{
		client:  resend.NewClient(apiKey),
		from:    from,
		siteURL: siteURL,
	}
}

func (m *ResendMailer) SendContactMessage(e ContactEmail) error {
	body := html.EscapeString(e.Message)
	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <p style="color: #6b7280; font-size: 14px;">
    Message via Comedy Connector — reply directly to respond to %[1]s.
  </p>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 16px 0;" />
  <p><strong>To:</strong> %[2]s</p>
  <p><strong>From:</strong> %[1]s</p>
  <p><strong>Subject:</strong> %[3]s</p>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 16px 0;" />
  <div style="white-space: pre-line; line-height: 1.6;">%[4]s</div>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 24px 0;" />
  <p style="color: #9ca3af; font-size: 12px;">
    This message was sent via <a href="%[5]s" style="color: #7c3aed;">%[5]s</a>.
    Reply to this email to respond directly to %[1]s.
  </p>
</div>`,
		html.EscapeString(e.SenderName), html.EscapeString(e.RecipientName),
		html.EscapeString(e.Subject), body, m.siteURL)

	text := fmt.Sprintf(
		"Message via Comedy Connector — reply directly to respond to %s.\n\nTo: %s\nFrom: %s\nSubject: %s\n\n%s\n\n---\nSent via %s",
		e.SenderName, e.RecipientName, e.SenderName, e.Subject, e.Message, m.siteURL)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{e.To},
		ReplyTo: e.ReplyTo,
		Subject: "[Comedy Connector] " + e.Subject,
		Html:    htmlBody,
		Text:    text,
	})
	return err
}

func (m *ResendMailer) SendFreshnessReminder(e ReminderEmail) error {
	subject := "Keep your Comedy Connector profile fresh!"
	intro := "take a moment to make sure your Comedy Connector profile is up to date."
	if e.TeamName != "" {
		subject = fmt.Sprintf("Keep your %s team profile fresh!", e.TeamName)
		intro = fmt.Sprintf("take a moment to make sure the %s team profile is up to date.", html.EscapeString(e.TeamName))
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #7c3aed;">Hey %[1]s!</h2>
  <p>It's been a while — %[2]s</p>
  <p>Updated profiles help the community find and connect with the right people.</p>
  <a href="%[3]s" style="display:inline-block; background:#7c3aed; color:white; padding:12px 24px; border-radius:8px; text-decoration:none; margin:16px 0;">
    Update Profile
  </a>
  <p style="color: #9ca3af; font-size: 12px; margin-top: 24px;">
    You're receiving this because you have freshness reminders enabled.
    <a href="%[3]s/edit">Manage preferences</a>
  </p>
</div>`, html.EscapeString(e.Name), intro, e.ProfileURL)

	text := fmt.Sprintf("Hey %s!\n\nIt's been a while — update your profile to stay fresh:\n%s\n\nTo stop these reminders, visit: %s/edit",
		e.Name, e.ProfileURL, e.ProfileURL)

	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{e.To},
		Subject: subject,
		Html:    htmlBody,
		Text:    text,
	})
	return err
}
