// Package version provides build version information for the hellotutor binary.
// Version data is injected at build time via ldflags:
//
//	go build -ldflags "-X hellotutor/internal/version.version=1.0.0 \
//	  -X hellotutor/internal/version.commit=abc123 \
//	  -X hellotutor/internal/version.buildTime=2024-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Build-time variables set via ldflags.
var (
	version   string
	commit    string
	buildTime string
)

const (
	// ApplicationName is the display name used in full version output.
	ApplicationName = "hellotutor"

	// DefaultVersion is used when no version was injected at build time.
	DefaultVersion = "dev"
	// DefaultCommit is used when no commit hash was injected at build time.
	DefaultCommit = "unknown"
	// DefaultBuildTime is used when no build time was injected at build time.
	DefaultBuildTime = "unknown"
)

// Info holds the resolved version information for the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Get returns the version information, substituting defaults for any
// build variable that was not injected.
func Get() *Info {
	return &Info{
		Version:   withDefault(version, DefaultVersion),
		Commit:    withDefault(commit, DefaultCommit),
		BuildTime: withDefault(buildTime, DefaultBuildTime),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// IsDevelopment reports whether this binary is a development build.
func (i *Info) IsDevelopment() bool {
	return i.Version == DefaultVersion
}

// FormatShort returns a single-line output containing only the version number.
func (i *Info) FormatShort() string {
	return i.Version
}

// FormatFull returns a multi-line output with application name, version,
// commit, and build time.
func (i *Info) FormatFull() string {
	var builder strings.Builder

	builder.WriteString(ApplicationName)
	builder.WriteString("\n")
	builder.WriteString("Version:    ")
	builder.WriteString(i.Version)
	builder.WriteString("\n")
	builder.WriteString("Commit:     ")
	builder.WriteString(i.Commit)
	builder.WriteString("\n")
	builder.WriteString("Built:      ")
	builder.WriteString(i.BuildTime)
	builder.WriteString("\n")

	return builder.String()
}

// Write formats the version based on the short flag and writes it to w.
func (i *Info) Write(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, i.FormatShort())
		return err
	}
	_, err := fmt.Fprint(w, i.FormatFull())
	return err
}

// BuildTimestamp parses the build time as a timestamp. It returns a zero
// time when the build time is unknown or unparseable.
func (i *Info) BuildTimestamp() time.Time {
	if i.BuildTime == DefaultBuildTime {
		return time.Time{}
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, format := range formats {
		if parsed, err := time.Parse(format, i.BuildTime); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SetBuildVars sets the build-time variables. Used by tests.
func SetBuildVars(ver, com, bt string) {
	version = ver
	commit = com
	buildTime = bt
}

// ResetBuildVars clears all build variables. Used by tests.
func ResetBuildVars() {
	version = ""
	commit = ""
	buildTime = ""
}
