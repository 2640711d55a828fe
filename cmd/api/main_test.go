package main

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"

	appconfig "github.com/quickqualified/exteriors-api/internal/config"
	"github.com/quickqualified/exteriors-api/internal/notify"
	"github.com/quickqualified/exteriors-api/pkg/logging"
)

func senderConfig(provider, sendGridKey string) *appconfig.Config {
	return &appconfig.Config{
		EmailProvider:   provider,
		SendGridAPIKey:  sendGridKey,
		NotifyFromEmail: "leads@quickandqualified.ca",
		NotifyFromName:  "Q2 Leads",
	}
}

func TestBuildEmailSenderPrefersSendGridKey(t *testing.T) {
	logger := logging.New("error")
	sender := buildEmailSender(senderConfig("auto", "sg-key"), aws.Config{Region: "us-east-1"}, logger)
	if _, ok := sender.(*notify.SendGridSender); !ok {
		t.Fatalf("expected SendGrid sender, got %T", sender)
	}
}

func TestBuildEmailSenderAutoFallsBackToSES(t *testing.T) {
	logger := logging.New("error")
	sender := buildEmailSender(senderConfig("auto", ""), aws.Config{Region: "us-east-1"}, logger)
	if _, ok := sender.(*notify.SESSender); !ok {
		t.Fatalf("expected SES fallback, got %T", sender)
	}
}

func TestBuildEmailSenderExplicitSES(t *testing.T) {
	logger := logging.New("error")
	sender := buildEmailSender(senderConfig("ses", "sg-key"), aws.Config{Region: "us-east-1"}, logger)
	if _, ok := sender.(*notify.SESSender); !ok {
		t.Fatalf("expected SES sender when explicitly selected, got %T", sender)
	}
}

func TestBuildEmailSenderNone(t *testing.T) {
	logger := logging.New("error")
	sender := buildEmailSender(senderConfig("none", "sg-key"), aws.Config{}, logger)
	if _, ok := sender.(*notify.StubEmailSender); !ok {
		t.Fatalf("expected stub sender, got %T", sender)
	}
}

func TestBuildEmailSenderSendGridWithoutKeyIsNil(t *testing.T) {
	logger := logging.New("error")
	if sender := buildEmailSender(senderConfig("sendgrid", ""), aws.Config{}, logger); sender != nil {
		t.Fatalf("expected nil sender without an API key, got %T", sender)
	}
}
