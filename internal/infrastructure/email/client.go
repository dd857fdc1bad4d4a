// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/lead"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendLeadNotification(toEmail string, record *lead.Record) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService(apiKey, fromEmail, fromName string) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendLeadNotification composes and sends the new-lead notification email.
func (c *ResendClient) SendLeadNotification(toEmail string, record *lead.Record) error {
	subject := fmt.Sprintf("New partnership lead: %s", record.Name)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    leadNotificationHTML(record),
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send lead notification via Resend: %w", err)
	}

	return nil
}

func leadNotificationHTML(record *lead.Record) string {
	var b strings.Builder

	b.WriteString("<h2>New lead from the website</h2><table>")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", label, html.EscapeString(value))
	}

	row("Name", record.Name)
	row("Phone", record.Phone)
	row("Email", record.Email)
	row("Message", record.Message)
	row("Submitted from", record.PageURLCurrent)
	row("Landing page", record.PageURLInitial)
	b.WriteString("</table>")

	return b.String()
}
