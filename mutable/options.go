// File: options.go
// Title: Text Configuration Options
// Description: Functional options attaching a logger and an alphanumeric
//              classification mode to a Text, and their construction from a
//              loaded configuration profile.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package mutable

import (
	"os"

	"github.com/msto63/mtext/core/config"
	mtlog "github.com/msto63/mtext/core/log"
)

// AlnumMode selects how IsAlnum classifies text
type AlnumMode string

const (
	// AlnumStrict accepts letters and numeric characters
	AlnumStrict AlnumMode = config.AlnumStrict

	// AlnumCompat accepts letters only, as early releases of the container did
	AlnumCompat AlnumMode = config.AlnumCompat
)

// Option configures a Text
type Option func(*Text)

// WithLogger sets the logger receiving rejected calls (debug) and mutations
// (trace). A nil logger selects the package default.
func WithLogger(logger *mtlog.Logger) Option {
	return func(t *Text) {
		t.logger = logger
	}
}

// WithAlnumMode sets the IsAlnum classification mode
func WithAlnumMode(mode AlnumMode) Option {
	return func(t *Text) {
		t.alnum = mode
	}
}

// FromProfile returns the options described by a profile. The logger writes
// to standard error.
func FromProfile(profile *config.Profile) ([]Option, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	logger, err := profile.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithLogger(logger),
		WithAlnumMode(AlnumMode(profile.AlnumMode())),
	}, nil
}
