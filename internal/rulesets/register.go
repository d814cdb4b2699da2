// Copyright 2026 The Stringer Authors
// SPDX-License-Identifier: MIT

package rulesets

// Names lists the vendor rule-sets this package registers on import, in the
// same order as SPEC_FULL.md §4.2.1. cmd/confpull blank-imports this
// package so every init() below runs before the registry is consulted.
var Names = []string{
	"cisco",
	"telco",
	"juniper",
	"netscreen",
	"nortel_bay",
	"nortel_esr",
	"nortel_esu",
	"omniswitch",
	"dasan_nos",
	"timetra",
	"arbor",
	"adva_fsp",
}
