// Package format names the markup grammars markconv reads and writes.
//
// # Usage
//
//	// From a command line flag
//	f, err := format.ParseFormat("yml")
//
//	// From a file name; ".YML" and ".yaml" both give YAMLFormat
//	f, ok := format.FromPath("config.YML")
//
// The set of formats is closed: JSON, YAML and TOML.
//
// # Related Packages
//
//   - github.com/signadot/markconv - Parse and convert documents
//   - github.com/signadot/markconv/encode - Encode documents to text
package format
