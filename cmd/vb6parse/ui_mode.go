package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode is the value of check --ui. It implements pflag.Value, so a bad
// value fails at flag parsing and a config file sets it like any flag.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch m := uiMode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

func (m *uiMode) Set(value string) error {
	parsed, err := readUIMode(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *uiMode) String() string { return string(*m) }
func (m *uiMode) Type() string   { return "auto|on|off" }

// progressView: Bubble Tea рисует в stderr, поэтому для одного файла,
// машинных форматов и --quiet вид не нужен; в auto нужен терминал на stderr.
func progressView(mode uiMode, files int, format string, quiet, stderrTTY bool) bool {
	if files < 2 || format != "pretty" || quiet {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return stderrTTY
}

func stderrIsTerminal() bool { return isTerminal(os.Stderr) }
