package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Load    bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Load = boolEnv("MARKCONV_DEBUG_LOAD")
	d.Convert = boolEnv("MARKCONV_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Load reports whether reading and parsing documents is traced.
func Load() bool {
	return d.Load
}

// Convert reports whether conversions between formats are traced.
func Convert() bool {
	return d.Convert
}
