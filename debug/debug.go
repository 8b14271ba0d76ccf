// Package debug holds the env-gated tracing switches. Each switch reads
// one JSONKDL_DEBUG_* variable at startup; callers guard their trace
// output with the accessor so a disabled path costs one bool check.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Pipeline bool
	Parse    bool
	Convert  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Pipeline = boolEnv("JSONKDL_DEBUG_PIPELINE")
	d.Parse = boolEnv("JSONKDL_DEBUG_PARSE")
	d.Convert = boolEnv("JSONKDL_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Pipeline reports whether end-to-end stage tracing is on.
func Pipeline() bool {
	return d.Pipeline
}

// Parse reports whether input decoding traces are on.
func Parse() bool {
	return d.Parse
}

// Convert reports whether tree mapping traces are on.
func Convert() bool {
	return d.Convert
}
