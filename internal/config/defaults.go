package config

import "time"

const (
	defaultExtension    = ".md"
	defaultSkipModifier = "nocheck"
	defaultCommentToken = "//"
	defaultHiddenStart  = "hide-start"
	defaultHiddenEnd    = "hide-end"
	defaultCheckArg     = "check"
	defaultTimeout      = 30 * time.Second
	defaultWorkers      = 4
	defaultFormat       = "text"
	defaultDebounce     = 2 * time.Second
	defaultMetricsAddr  = ":9155"
	defaultHistoryDB    = "doccheck-history.db"
	defaultNATSSubject  = "doccheck.runs"
)

// ApplyDefaults fills unset fields with their documented defaults.
// Called by Load after parsing; exported so tests and the init command can
// construct complete configurations without a file on disk.
func (c *Config) ApplyDefaults() {
	if c.Content.Extension == "" {
		c.Content.Extension = defaultExtension
	}
	if c.Language.SkipModifier == "" {
		c.Language.SkipModifier = defaultSkipModifier
	}
	if c.Language.CommentToken == "" {
		c.Language.CommentToken = defaultCommentToken
	}
	if c.Language.HiddenStart == "" {
		c.Language.HiddenStart = defaultHiddenStart
	}
	if c.Language.HiddenEnd == "" {
		c.Language.HiddenEnd = defaultHiddenEnd
	}
	if c.Compiler.CheckArg == "" {
		c.Compiler.CheckArg = defaultCheckArg
	}
	if c.Compiler.Timeout <= 0 {
		c.Compiler.Timeout = Duration(defaultTimeout)
	}
	if c.Check.Workers <= 0 {
		c.Check.Workers = defaultWorkers
	}
	if c.Check.Format == "" {
		c.Check.Format = defaultFormat
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = Duration(defaultDebounce)
	}
	if c.Watch.MetricsAddr == "" {
		c.Watch.MetricsAddr = defaultMetricsAddr
	}
	if c.Watch.HistoryDB == "" {
		c.Watch.HistoryDB = defaultHistoryDB
	}
	if c.Watch.NATS.Subject == "" {
		c.Watch.NATS.Subject = defaultNATSSubject
	}
	c.Logging.Level = string(NormalizeLogLevel(c.Logging.Level))
	c.Logging.Format = string(NormalizeLogFormat(c.Logging.Format))
}
