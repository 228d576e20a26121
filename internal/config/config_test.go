package config

import (
	"errors"
	"testing"
)

func TestValidateRequiresOrganization(t *testing.T) {
	cfg := Config{User: "alice", Token: "secret"}

	err := cfg.Validate()
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
	if err.Error() != "missing required argument `organization`" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidateRequiresUserAndToken(t *testing.T) {
	cfg := Config{Organization: "acme"}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument for user, got %v", err)
	}

	cfg.User = "alice"
	if err := cfg.Validate(); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument for token, got %v", err)
	}

	cfg.Token = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete basic-auth config should validate, got %v", err)
	}
}

func TestValidateAcceptsPATWithoutBasicCredentials(t *testing.T) {
	cfg := Config{Organization: "acme", PAT: "pat-token"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("PAT config should validate, got %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("JIRA_ORGANIZATION", "acme")
	t.Setenv("JIRA_USER", "alice")
	t.Setenv("JIRA_TOKEN", "secret")
	t.Setenv("JIRA_PAT", "")

	cfg := FromEnv()
	if cfg.Organization != "acme" || cfg.User != "alice" || cfg.Token != "secret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.PAT != "" {
		t.Fatalf("expected empty PAT, got %q", cfg.PAT)
	}
}
