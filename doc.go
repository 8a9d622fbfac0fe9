// Package markconv converts documents between JSON, YAML and TOML.
//
// A document is parsed into a [Format], one of [JSON], [YAML] or [TOML],
// each holding the value tree produced by that format's decoder. A
// [Transcoder] wraps one Format and projects it into the value tree of any
// of the three formats. Conversions between different formats pass through
// the canonical tree of package ir, which defines how nulls, big integers,
// non-finite floats and date-times map onto each target.
//
// Final text rendering of a Format is done by package encode.
package markconv
