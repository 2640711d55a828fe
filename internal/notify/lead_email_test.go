package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickqualified/exteriors-api/internal/leads"
)

type captureSender struct {
	err  error
	sent []EmailMessage
}

func (c *captureSender) Send(_ context.Context, msg EmailMessage) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, msg)
	return nil
}

func sampleLead() *leads.Lead {
	return &leads.Lead{
		ID:        "lead-123",
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-0101",
		Address:   "12 King St, Keswick",
		JobType:   "Roof Repairs",
		Notes:     "leak over the garage",
		CreatedAt: "2026-08-29T14:00:00Z",
	}
}

func TestLeadSavedSendsSummary(t *testing.T) {
	sender := &captureSender{}
	mailer := NewLeadMailer(sender, LeadMailerConfig{To: "owner@example.com"}, nil)

	require.NoError(t, mailer.LeadSaved(context.Background(), sampleLead()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "New Q2 Lead — Roof Repairs — Jane Doe", msg.Subject)
	assert.Contains(t, msg.HTML, "Jane Doe")
	assert.Contains(t, msg.HTML, "2026-08-29T14:00:00Z")
	assert.Contains(t, msg.Body, "Job Type: Roof Repairs")
}

func TestLeadSavedEscapesUserText(t *testing.T) {
	sender := &captureSender{}
	mailer := NewLeadMailer(sender, LeadMailerConfig{To: "owner@example.com"}, nil)

	lead := sampleLead()
	lead.Name = `<script>alert(1)</script>`
	lead.Notes = `"quoted" & <b>bold</b>`

	require.NoError(t, mailer.LeadSaved(context.Background(), lead))
	html := sender.sent[0].HTML

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "&#34;quoted&#34; &amp; &lt;b&gt;bold&lt;/b&gt;")
}

func TestLeadSavedEmptyNotesPlaceholder(t *testing.T) {
	sender := &captureSender{}
	mailer := NewLeadMailer(sender, LeadMailerConfig{To: "owner@example.com"}, nil)

	lead := sampleLead()
	lead.Notes = ""

	require.NoError(t, mailer.LeadSaved(context.Background(), lead))
	assert.Contains(t, sender.sent[0].HTML, "—")
}

func TestLeadSavedPhotosSection(t *testing.T) {
	sender := &captureSender{}
	mailer := NewLeadMailer(sender, LeadMailerConfig{To: "owner@example.com"}, nil)

	lead := sampleLead()
	lead.Attachments = []leads.Attachment{
		{Name: "roof.jpg", URL: "https://bucket/leads/lead-123/1-roof.jpg?sig=a&x=1"},
		{Name: "gutter.jpg", URL: "https://bucket/leads/lead-123/2-gutter.jpg"},
	}

	require.NoError(t, mailer.LeadSaved(context.Background(), lead))
	html := sender.sent[0].HTML

	assert.Contains(t, html, "Photos")
	assert.Contains(t, html, "roof.jpg")
	assert.Contains(t, html, "gutter.jpg")
	// Query separators in the signed URL must be attribute-escaped.
	assert.Contains(t, html, "sig=a&amp;x=1")
}

func TestLeadSavedConsoleLink(t *testing.T) {
	sender := &captureSender{}
	mailer := NewLeadMailer(sender, LeadMailerConfig{
		To:            "owner@example.com",
		ConsoleRegion: "us-east-1",
		ConsoleTable:  "leads",
	}, nil)

	require.NoError(t, mailer.LeadSaved(context.Background(), sampleLead()))
	assert.Contains(t, sender.sent[0].HTML, "Open in DynamoDB")

	// Without the console settings the link is omitted.
	sender2 := &captureSender{}
	mailer2 := NewLeadMailer(sender2, LeadMailerConfig{To: "owner@example.com"}, nil)
	require.NoError(t, mailer2.LeadSaved(context.Background(), sampleLead()))
	assert.NotContains(t, sender2.sent[0].HTML, "Open in DynamoDB")
}

func TestLeadSavedNoSenderConfigured(t *testing.T) {
	mailer := NewLeadMailer(nil, LeadMailerConfig{To: "owner@example.com"}, nil)

	err := mailer.LeadSaved(context.Background(), sampleLead())
	assert.ErrorIs(t, err, ErrSenderNotConfigured)
}

func TestLeadSavedSendFailurePropagates(t *testing.T) {
	sender := &captureSender{err: errors.New("rate limited")}
	mailer := NewLeadMailer(sender, LeadMailerConfig{To: "owner@example.com"}, nil)

	err := mailer.LeadSaved(context.Background(), sampleLead())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}
