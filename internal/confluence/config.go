package confluence

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/agentstation/tablesync/pkg/constants"
	"github.com/agentstation/tablesync/pkg/errors"
)

// Config holds everything needed to reach a Confluence instance. It is passed
// at construction; nothing is read from the environment here.
type Config struct {
	// BaseURL is the site root, e.g. https://example.atlassian.net/wiki.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"url"`

	// SpaceKey is written into replace payloads. When empty the space key
	// reported by the last fetch of the document is used.
	SpaceKey string `json:"space_key" yaml:"space_key" mapstructure:"space"`

	// Username selects basic authentication with Token as the password.
	// Without it Token is sent as a bearer token.
	Username string `json:"username" yaml:"username" mapstructure:"user"`

	// Token is the API token or personal access token.
	Token string `json:"-" yaml:"-" mapstructure:"token"`

	// Timeout bounds each HTTP request. Zero means constants.DefaultHTTPTimeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Token, validation.Required.When(c.Username != "").Error("token is required with a username")),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return errors.NewConfigError("confluence", err.Error(), err)
	}
	return nil
}

// timeout returns the effective request timeout.
func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return constants.DefaultHTTPTimeout
}

// contentURL returns the REST URL of document id.
func (c Config) contentURL(id string) string {
	return strings.TrimRight(c.BaseURL, "/") + constants.ContentAPIPath + "/" + id
}
