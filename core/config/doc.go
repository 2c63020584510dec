// Package config loads mtext profiles from TOML and YAML.
//
// Package: config
// Title: Text Profile Configuration
// Description: A profile carries the settings a text container accepts: the
//              alphanumeric predicate mode and the logger level, format and
//              name. Profiles come from files, strings or the environment and
//              are validated before use.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with TOML/YAML support
//
// # File Format
//
//	[text]
//	alnum = "strict"   # or "compat"
//
//	[log]
//	level = "info"     # trace | debug | info | warn | error | off
//	format = "json"    # json | text | logfmt
//	name = "mtext"
//
// The YAML form uses the same keys. Files ending in .yaml or .yml are read as
// YAML, everything else as TOML. Unknown keys are rejected.
//
// # Environment Overrides
//
// Load applies variables named MTEXT_<SECTION>_<KEY>, for example
// MTEXT_TEXT_ALNUM=compat or MTEXT_LOG_LEVEL=debug. LoadWithOptions takes a
// custom prefix; an empty prefix disables overrides.
//
// # Usage
//
//	profile, err := config.Load("mtext.toml")
//	if err != nil {
//		return err
//	}
//	logger, err := profile.NewLogger(os.Stderr)
//
// Errors carry module "config" and the codes NOT_FOUND, CONFIG_ERROR or
// INVALID_CONFIG.
package config
