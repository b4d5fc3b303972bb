package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// execute runs the CLI in-process with every flag reset to its default.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCheckJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Good.bas", "Sub Main()\n    x = 1\nEnd Sub\n")
	writeFile(t, dir, "Bad.bas", "Sub Main(\n")

	out, _, err := execute(t, "check", "--format", "json", "--color", "off", dir)
	var ee exitError
	if !errors.As(err, &ee) || ee.code != 1 {
		t.Fatalf("expected exit status 1, got %v", err)
	}
	var doc struct {
		Diagnostics []struct {
			Severity string `json:"severity"`
			Code     string `json:"code"`
		} `json:"diagnostics"`
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if doc.Count == 0 || doc.Count != len(doc.Diagnostics) {
		t.Fatalf("count %d, diagnostics %d", doc.Count, len(doc.Diagnostics))
	}
	for _, d := range doc.Diagnostics {
		if !strings.HasPrefix(d.Code, "SYN") {
			t.Fatalf("unexpected diagnostic %+v", d)
		}
	}
}

func TestCheckCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Good.bas", "Sub Main()\n    x = 1\nEnd Sub\n")
	_, errOut, err := execute(t, "check", "--ui", "off", "--color", "off", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(errOut, "1 files, 0 errors, 0 warnings") {
		t.Fatalf("summary missing:\n%s", errOut)
	}
}

func TestParseTreeFromStdin(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("x = 1\n"))
	defer rootCmd.SetIn(nil)
	out, _, err := execute(t, "parse", "--color", "off", "-")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(out, "Root") {
		t.Fatalf("tree output:\n%s", out)
	}
	if !strings.Contains(out, "AssignmentStatement") {
		t.Fatalf("no assignment in tree:\n%s", out)
	}
}

func TestTokenizeJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "A.bas", "Dim x\n")
	out, _, err := execute(t, "tokenize", "--format", "json", "--no-trivia", path)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if !strings.Contains(out, "\"Dim\"") {
		t.Fatalf("Dim token missing:\n%s", out)
	}
}

func TestResourcesCommand(t *testing.T) {
	form := filepath.Join("..", "..", "testdata", "project", "Form1.frm")
	out, _, err := execute(t, "resources", "--format", "json", "--color", "off", form)
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	var rows []resourceRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 resources, got %d: %+v", len(rows), rows)
	}
	if rows[0].Key != "Icon" || rows[0].Text != "IconData9" {
		t.Fatalf("icon row = %+v", rows[0])
	}
	last := rows[2]
	if last.Control != "List1" || last.Kind != "list" || strings.Join(last.Items, ",") != "Apple,Banana" {
		t.Fatalf("list row = %+v", last)
	}
}

func TestResourcesScanFile(t *testing.T) {
	blob := filepath.Join("..", "..", "testdata", "project", "Form1.frx")
	out, _, err := execute(t, "resources", blob)
	if err != nil {
		t.Fatalf("resources: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries:\n%s", out)
	}
	if !strings.Contains(lines[1], "Form1.frx@0x000A record8 10 bytes") {
		t.Fatalf("second entry = %q", lines[1])
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload.Tool != "vb6parse" || len(payload.Extensions) == 0 {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestConfigFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, configName, "[parse]\nmax_errors = 3\nencoding = \"windows-1252\"\n\n[output]\ncolor = \"off\"\n")
	resetFlags(rootCmd)
	if err := checkCmd.ParseFlags([]string{"--config", cfgPath, "--max-errors", "7"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if err := applyConfig(checkCmd); err != nil {
		t.Fatalf("applyConfig: %v", err)
	}
	opts, err := driverOptions(checkCmd)
	if err != nil {
		t.Fatalf("driverOptions: %v", err)
	}
	if opts.MaxErrors != 7 {
		t.Fatalf("command line must win, MaxErrors = %d", opts.MaxErrors)
	}
	if opts.Encoding.String() != "windows-1252" {
		t.Fatalf("encoding = %v", opts.Encoding)
	}
	if c, _ := checkCmd.Flags().GetString("color"); c != "off" {
		t.Fatalf("color = %q", c)
	}
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, configName, "[parse]\nmax_errors = 3\nbogus = 1\n\n[extra]\nx = 1\n")
	_, err := loadConfig(path)
	if err == nil {
		t.Fatalf("expected error for unknown keys")
	}
	if !strings.Contains(err.Error(), "parse.bogus") || !strings.Contains(err.Error(), "extra") {
		t.Fatalf("error does not name keys: %v", err)
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, configName, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: %v %v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %s", path)
	}
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"ON", uiModeOn, false},
		{" off ", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, %v", tc.in, got, err)
		}
	}
}

func TestProgressViewDecision(t *testing.T) {
	cases := []struct {
		mode   uiMode
		files  int
		format string
		quiet  bool
		tty    bool
		want   bool
	}{
		{uiModeAuto, 3, "pretty", false, true, true},
		{uiModeAuto, 3, "pretty", false, false, false},
		{uiModeOn, 3, "pretty", false, false, true},
		{uiModeOn, 1, "pretty", false, true, false},
		{uiModeOn, 3, "json", false, true, false},
		{uiModeOn, 3, "pretty", true, true, false},
		{uiModeOff, 3, "pretty", false, true, false},
	}
	for _, tc := range cases {
		if got := progressView(tc.mode, tc.files, tc.format, tc.quiet, tc.tty); got != tc.want {
			t.Fatalf("progressView(%+v) = %v", tc, got)
		}
	}
}

func TestCheckRejectsBadUIMode(t *testing.T) {
	path := writeFile(t, t.TempDir(), "A.bas", "x = 1\n")
	if _, _, err := execute(t, "check", "--ui", "sometimes", path); err == nil {
		t.Fatalf("expected flag error")
	}
}

func TestFixDryRun(t *testing.T) {
	dir := t.TempDir()
	src := "Sub Main()\n    x = 1\n"
	path := writeFile(t, dir, "A.bas", src)
	out, _, err := execute(t, "fix", "--all", "--dry-run", path)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if out != src+"End Sub\n" {
		t.Fatalf("dry run output = %q", out)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil || string(onDisk) != src {
		t.Fatalf("dry run modified the file: %q, %v", onDisk, err)
	}
}
