package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. Dynamic values from the decoders
// are rendered as indented JSON, ordered YAML maps as YAML.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case yaml.MapSlice:
			d, err := yaml.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = "\n   |" + strings.ReplaceAll(strings.TrimRight(string(d), "\n"), "\n", "\n   |")
		}
	}
	fmt.Fprintf(out, msg, args...)
}
