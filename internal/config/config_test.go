package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "xlsx" {
		t.Fatalf("default backend: got %q", cfg.DataBackend)
	}
	if cfg.XLSXPath == "" || cfg.SQLiteDBPath == "" {
		t.Fatalf("paths must have defaults: %+v", cfg)
	}
	if cfg.AMQPQueue != "report_requests" {
		t.Fatalf("default queue: got %q", cfg.AMQPQueue)
	}
	if cfg.QuoteTimeout != 10*time.Second {
		t.Fatalf("default quote timeout: got %v", cfg.QuoteTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("API_ALPHAVANTAGE", "secret")
	t.Setenv("QUOTE_TIMEOUT", "30s")
	cfg := Load()
	if cfg.DataBackend != "sqlite" || cfg.AlphaVantageAPIKey != "secret" {
		t.Fatalf("env not picked up: %+v", cfg)
	}
	if cfg.QuoteTimeout != 30*time.Second {
		t.Fatalf("quote timeout from env: got %v", cfg.QuoteTimeout)
	}
}

func TestValidateOK(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "bogus"
	cfg.AMQPURL = "http://not-amqp"
	cfg.AMQPExchange = ""
	cfg.QuoteTimeout = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	msg := err.Error()
	for _, want := range []string{"invalid data backend", "invalid AMQP URL scheme", "exchange name cannot be empty", "invalid quote timeout"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error should mention %q:\n%s", want, msg)
		}
	}
}

func TestValidateXLSXPathRequired(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "xlsx"
	cfg.XLSXPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty statement path")
	}
}

func TestValidateSheetsRequiresSpreadsheetID(t *testing.T) {
	cfg := Load()
	cfg.DataBackend = "sheets"
	cfg.GoogleSpreadsheetID = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing spreadsheet ID")
	}
}
