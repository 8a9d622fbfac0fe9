// Package encode renders a parsed document as text.
//
// # Usage
//
//	tc, err := markconv.FromPath("config.toml")
//	...
//	y, err := tc.ToYAML()
//	...
//	err = encode.Encode(y, os.Stdout, encode.Indent(4))
//
//	// convert while encoding, with terminal colors
//	err = encode.Encode(doc, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// JSON is written by encoding/json, YAML by goccy/go-yaml and TOML by
// BurntSushi/toml. Colors apply to JSON and YAML output only.
package encode
