package config

import (
	"fmt"
	"os"
)

const starterConfig = `# doccheck configuration
content:
  root: docs            # documentation tree to scan
  extension: .md

language:
  tag: mylang           # fence info-string tag for checked snippets
  skip_modifier: nocheck # "mylang nocheck" fences are listed but never compiled
  comment_token: "//"
  hidden_start: hide-start
  hidden_end: hide-end

boilerplate:
  path: doccheck-prelude.mylang  # prepended to every checked snippet

compiler:
  path: mylangc         # external compiler binary
  check_arg: check      # invoked as: <path> <check_arg> <unit-file>
  timeout: 30s

check:
  workers: 4
  format: text          # text or json

watch:
  debounce: 2s
  interval: 0s          # periodic full re-check; 0 disables
  metrics_addr: ":9155"
  history_db: doccheck-history.db
  nats:
    url: ""             # empty disables publishing
    subject: doccheck.runs

logging:
  level: info
  format: text
`

// Init writes a commented starter configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", path)
	}
	return os.WriteFile(path, []byte(starterConfig), 0o644)
}
