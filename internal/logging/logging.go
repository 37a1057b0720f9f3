// Package logging builds the hclog loggers used by the CLI and the server.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Options configures New.
type Options struct {
	Name string
	// Level accepts hclog level names. A "json:" prefix, as in "json:debug",
	// also switches the output to JSON.
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns a logger writing UTC timestamps to Output, or stderr.
func New(opts Options) hclog.Logger {
	level, jsonFormat := ParseLevel(opts.Level)

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	name := opts.Name
	if name == "" {
		name = "barcodeform"
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      level,
		JSONFormat: jsonFormat || opts.JSON,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel splits an optional "json:" prefix from raw and resolves the
// level. Unknown or empty levels resolve to info.
func ParseLevel(raw string) (hclog.Level, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	jsonFormat := false
	if strings.HasPrefix(raw, "json") {
		jsonFormat = true
		_, raw, _ = strings.Cut(raw, ":")
	}

	level := hclog.LevelFromString(raw)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return level, jsonFormat
}
