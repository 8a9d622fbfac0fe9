package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"yml", YAMLFormat},
		{"t", TOMLFormat},
		{"toml", TOMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.json", JSONFormat, true},
		{"a.JSON", JSONFormat, true},
		{"dir/a.yaml", YAMLFormat, true},
		{"a.yml", YAMLFormat, true},
		{"a.YML", YAMLFormat, true},
		{"a.Toml", TOMLFormat, true},
		{"a.txt", 0, false},
		{"noext", 0, false},
		{"dir.json/noext", 0, false},
		{"a.", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := FromPath(tt.path)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromExtDot(t *testing.T) {
	for _, ext := range []string{"yml", ".yml", "YAML", ".Yaml", ".YML"} {
		if f, ok := FromExt(ext); !ok || f != YAMLFormat {
			t.Errorf("FromExt(%q) = %s, %v", ext, f, ok)
		}
	}
	for _, ext := range []string{"", ".", "..json", "jso", "txt"} {
		if f, ok := FromExt(ext); ok {
			t.Errorf("FromExt(%q) = %s, want no format", ext, f)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		g, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s, want %s", g, f)
		}
		if ext, ok := FromExt(f.Suffix()); !ok || ext != f {
			t.Errorf("suffix %q does not map back to %s", f.Suffix(), f)
		}
	}
	if got := TOMLFormat.Name(); got != "TOML" {
		t.Errorf("got %q, want TOML", got)
	}
	if got := Format(9).String(); got != "<err: 9 is not a format>" {
		t.Errorf("got %q", got)
	}
}
