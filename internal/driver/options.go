package driver

import (
	"fmt"
	"runtime"
	"strings"
)

// Encoding selects how file bytes become source text.
type Encoding uint8

const (
	// EncodingAuto keeps valid UTF-8 and transcodes everything else from
	// Windows-1252, the code page the VB6 IDE saves in.
	EncodingAuto Encoding = iota
	EncodingUTF8
	EncodingWindows1252
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingWindows1252:
		return "windows-1252"
	}
	return "auto"
}

func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf8", "utf-8":
		return EncodingUTF8, nil
	case "windows-1252", "cp1252", "1252", "ansi":
		return EncodingWindows1252, nil
	}
	return EncodingAuto, fmt.Errorf("unknown encoding %q (expected auto|utf-8|windows-1252)", s)
}

// Options are shared by every driver entry point.
type Options struct {
	// MaxDiagnostics caps the bag of each file; 0 means unlimited.
	MaxDiagnostics int
	// MaxErrors caps syntax errors per file before SYN2011; 0 means unlimited.
	MaxErrors uint
	Encoding  Encoding
	// Jobs bounds parallelism of the *Dir functions; 0 means GOMAXPROCS.
	Jobs int
	// Resources resolves "X.frx":offset property values after parsing.
	Resources bool
	// Timings adds an OBS6001 diagnostic with per-phase durations.
	Timings bool
	// Progress receives per-file stage events; may be nil. The driver never
	// closes it.
	Progress chan<- Event
	// Cache skips files whose content and options match a stored run. Only
	// diagnostics are cached: callers that need the tree leave it nil.
	Cache *DiskCache
}

func (o *Options) jobs(n int) int {
	j := o.Jobs
	if j <= 0 {
		j = runtime.GOMAXPROCS(0)
	}
	return max(1, min(j, n))
}
