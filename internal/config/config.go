// Package config holds the credentials used to talk to Jira. Values come
// from command-line flags with environment-variable fallbacks.
package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingArgument indicates a required credential or identifier was not
// provided. The wrapped message names the missing argument.
var ErrMissingArgument = errors.New("missing required argument")

// Config carries the connection settings for a Jira Cloud organization.
// Either User+Token (basic auth) or PAT (bearer auth) must be set.
type Config struct {
	Organization string
	User         string
	Token        string
	PAT          string
}

// FromEnv builds a Config from the JIRA_* environment variables. The values
// serve as flag defaults, so flags always win.
func FromEnv() Config {
	return Config{
		Organization: os.Getenv("JIRA_ORGANIZATION"),
		User:         os.Getenv("JIRA_USER"),
		Token:        os.Getenv("JIRA_TOKEN"),
		PAT:          os.Getenv("JIRA_PAT"),
	}
}

// Validate checks that the configuration is complete enough to authenticate.
func (c Config) Validate() error {
	if c.Organization == "" {
		return fmt.Errorf("%w `organization`", ErrMissingArgument)
	}
	if c.PAT != "" {
		return nil
	}
	if c.User == "" {
		return fmt.Errorf("%w `user`", ErrMissingArgument)
	}
	if c.Token == "" {
		return fmt.Errorf("%w `token`", ErrMissingArgument)
	}
	return nil
}
