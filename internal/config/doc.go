// Package config loads mask field definitions for the demo form.
//
// Definitions live in a single TOML or YAML file; the format is chosen
// by file extension. A missing file is not an error; the caller falls
// back to the built-in field set. Parse failures surface as *ParseError
// so the offending file is always named.
//
// Example (TOML):
//
//	[[field]]
//	name  = "expiry"
//	label = "Expiry"
//	mask  = "??/??"
//
//	[[field]]
//	name     = "card"
//	label    = "Card number"
//	grouping = true
package config
