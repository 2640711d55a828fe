package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/quickqualified/exteriors-api/internal/leads"
	"github.com/quickqualified/exteriors-api/pkg/logging"
)

// ErrSenderNotConfigured is returned when a notification is requested but no
// email sender (API key) was configured.
var ErrSenderNotConfigured = errors.New("notify: email sender not configured")

const emptyPlaceholder = "—"

// LeadMailerConfig holds the notification targets and the optional console
// deep-link settings.
type LeadMailerConfig struct {
	To string

	// ConsoleRegion and ConsoleTable, when both set, enable an
	// "Open in DynamoDB" link in the notification body.
	ConsoleRegion string
	ConsoleTable  string
}

// LeadMailer renders and sends the operator notification for a saved lead.
type LeadMailer struct {
	sender EmailSender
	cfg    LeadMailerConfig
	logger *logging.Logger
}

// NewLeadMailer creates a lead notification mailer.
func NewLeadMailer(sender EmailSender, cfg LeadMailerConfig, logger *logging.Logger) *LeadMailer {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadMailer{sender: sender, cfg: cfg, logger: logger}
}

// LeadSaved sends the operator an HTML summary of the lead. The lead is
// already persisted by the time this runs; failures are reported up but never
// undo the write.
func (m *LeadMailer) LeadSaved(ctx context.Context, lead *leads.Lead) error {
	if m.sender == nil {
		return ErrSenderNotConfigured
	}

	msg := EmailMessage{
		To:      m.cfg.To,
		Subject: fmt.Sprintf("New Q2 Lead — %s — %s", lead.JobType, lead.Name),
		Body:    renderLeadText(lead),
		HTML:    m.renderLeadHTML(lead),
	}
	if err := m.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify: lead notification: %w", err)
	}
	return nil
}

// renderLeadHTML builds the notification body. Every interpolated value is
// escaped; lead fields are user-supplied text.
func (m *LeadMailer) renderLeadHTML(lead *leads.Lead) string {
	var b strings.Builder

	b.WriteString(`<h2 style="margin:0 0 12px;">New Q2 Lead</h2>`)
	b.WriteString(`<p style="margin:0 0 16px;color:#52525b;">A new quote request was submitted.</p>`)
	b.WriteString(`<table cellpadding="6" cellspacing="0" style="border-collapse:collapse;">`)

	writeRow(&b, "Name", lead.Name)
	writeRow(&b, "Phone", lead.Phone)
	writeRow(&b, "Email", lead.Email)
	writeRow(&b, "Address", lead.Address)
	writeRow(&b, "Job Type", lead.JobType)
	writeRow(&b, "Message", orPlaceholder(lead.Notes))
	if lead.FilePath != "" {
		writeRow(&b, "File Path", lead.FilePath)
	}
	writeRow(&b, "Created At", lead.CreatedAt)
	b.WriteString(`</table>`)

	if len(lead.Attachments) > 0 {
		b.WriteString(`<h3 style="margin:16px 0 8px;">Photos</h3><ul style="margin:0;padding-left:20px;">`)
		for _, a := range lead.Attachments {
			fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`,
				html.EscapeString(a.URL), html.EscapeString(a.Name))
		}
		b.WriteString(`</ul>`)
	} else {
		fmt.Fprintf(&b, `<p style="margin:16px 0 0;color:#52525b;">Photos: %s</p>`, emptyPlaceholder)
	}

	if link := m.consoleLink(); link != "" {
		fmt.Fprintf(&b, `<p style="margin:16px 0 0;"><a href="%s">Open in DynamoDB</a></p>`, html.EscapeString(link))
	}

	return b.String()
}

// renderLeadText is the plain-text fallback for clients that skip HTML.
func renderLeadText(lead *leads.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", lead.Name)
	fmt.Fprintf(&b, "Phone: %s\n", lead.Phone)
	fmt.Fprintf(&b, "Email: %s\n", lead.Email)
	fmt.Fprintf(&b, "Address: %s\n", lead.Address)
	fmt.Fprintf(&b, "Job Type: %s\n", lead.JobType)
	fmt.Fprintf(&b, "Message: %s\n", orPlaceholder(lead.Notes))
	fmt.Fprintf(&b, "Photos: %d\n", len(lead.Attachments))
	fmt.Fprintf(&b, "Created At: %s\n", lead.CreatedAt)
	return b.String()
}

func (m *LeadMailer) consoleLink() string {
	if m.cfg.ConsoleRegion == "" || m.cfg.ConsoleTable == "" {
		return ""
	}
	return fmt.Sprintf(
		"https://%s.console.aws.amazon.com/dynamodbv2/home?region=%s#item-explorer?table=%s",
		m.cfg.ConsoleRegion, m.cfg.ConsoleRegion, m.cfg.ConsoleTable,
	)
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<tr><td><strong>%s</strong></td><td>%s</td></tr>`,
		label, html.EscapeString(value))
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyPlaceholder
	}
	return s
}
