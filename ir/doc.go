// Package ir provides the intermediate representation (IR) that markconv
// converts documents through.
//
// # Overview
//
// Each supported grammar decodes into its own dynamic value tree: JSON into
// encoding/json values, YAML into goccy/go-yaml values and TOML into
// BurntSushi/toml values. These trees differ in details that matter for
// conversion: YAML distinguishes unsigned integers, TOML has date-times but
// no null, JSON numbers may be arbitrarily large. The IR is the one model
// covering all of them, and the mapping functions in this package are the
// only place where one grammar's values become another's.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean
//   - NumberType: int64, float64, or an integer outside int64 kept as text
//   - StringType: string value
//   - DateTimeType: a date, time or date-time with its text form
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values), in source order
//
// Every number carries its canonical decimal text in Number. Object keys
// are nodes, so YAML documents with integer or boolean keys survive until
// they are rendered for a grammar which only allows string keys.
//
// # Mapping
//
//	node, err := ir.FromAny(v)   // any decoder output -> IR
//	j, err := ir.ToJSON(node)    // IR -> encoding/json values
//	y, err := ir.ToYAML(node)    // IR -> goccy/go-yaml values
//	t, err := ir.ToTOML(node)    // IR -> BurntSushi/toml table
//
// Values with no representation in the target produce an error wrapping
// one of ErrNull, ErrNotTable, ErrIntRange, ErrNonFinite, ErrKeyType or
// ErrDuplicateKey, naming the path of the offending node.
//
// # Related Packages
//
//   - github.com/signadot/markconv - Transcoder built on this package
package ir
