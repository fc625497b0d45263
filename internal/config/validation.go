package config

import (
	"strings"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
)

// Validate checks the configuration for required fields and internal
// consistency. Defaults must already be applied.
func (c *Config) Validate() error {
	if c.Content.Root == "" {
		return dcerrors.ValidationFailed("content.root", "must not be empty")
	}
	if !strings.HasPrefix(c.Content.Extension, ".") {
		return dcerrors.ValidationFailed("content.extension", "must start with a dot")
	}
	if c.Language.Tag == "" {
		return dcerrors.ValidationFailed("language.tag", "must not be empty")
	}
	if strings.ContainsAny(c.Language.Tag, " \t") {
		return dcerrors.ValidationFailed("language.tag", "must be a single token")
	}
	if strings.ContainsAny(c.Language.SkipModifier, " \t") {
		return dcerrors.ValidationFailed("language.skip_modifier", "must be a single token")
	}
	if c.Language.HiddenStart == c.Language.HiddenEnd {
		return dcerrors.ValidationFailed("language.hidden_end", "must differ from hidden_start")
	}
	if c.Boilerplate.Path == "" {
		return dcerrors.ValidationFailed("boilerplate.path", "must not be empty")
	}
	if c.Compiler.Path == "" {
		return dcerrors.ValidationFailed("compiler.path", "must not be empty")
	}
	if c.Check.Format != "text" && c.Check.Format != "json" {
		return dcerrors.ValidationFailed("check.format", "must be text or json")
	}
	return nil
}
