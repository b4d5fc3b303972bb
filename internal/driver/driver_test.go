package driver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"vb6parse/internal/diag"
	"vb6parse/internal/driver"
	"vb6parse/internal/source"
	"vb6parse/internal/syntax"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func hasCode(r *driver.Result, code diag.Code) bool {
	for _, d := range r.Bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestParseDir(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"Module1.bas":    "Attribute VB_Name = \"Module1\"\nSub Main()\n    x = 1\nEnd Sub\n",
		"sub/Class1.cls": "Public Sub Go(\n",
		"notes.txt":      "ignored",
		"Latin.bas":      "Sub S()\n    s = \"caf\xe9\"\nEnd Sub\n",
	})
	fileSet, results, err := driver.ParseDir(context.Background(), dir, driver.Options{Jobs: 2})
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	names := []string{"Latin.bas", "Module1.bas", "Class1.cls"}
	for i, r := range results {
		if filepath.Base(r.Path) != names[i] {
			t.Fatalf("result %d is %s, want %s", i, r.Path, names[i])
		}
		if r.Tree == nil || !r.Loaded {
			t.Fatalf("%s: no tree", r.Path)
		}
		if got := r.Tree.Text(); got != string(fileSet.Get(r.FileID).Content) {
			t.Fatalf("%s: tree text differs from source", r.Path)
		}
	}

	latin := results[0]
	if !hasCode(latin, diag.ObsInfo) || latin.Bag.HasErrors() {
		t.Fatalf("Latin.bas diagnostics: %v", latin.Bag.Items())
	}
	if fileSet.Get(latin.FileID).Flags&source.FileDecoded1252 == 0 {
		t.Fatalf("Latin.bas not marked as transcoded")
	}
	if !strings.Contains(latin.Tree.Text(), "café") {
		t.Fatalf("transcoded text = %q", latin.Tree.Text())
	}
	if results[1].Bag.Len() != 0 {
		t.Fatalf("Module1.bas diagnostics: %v", results[1].Bag.Items())
	}
	if !results[2].Bag.HasErrors() {
		t.Fatalf("Class1.cls should have errors")
	}
	if driver.CountErrors(results) != results[2].Bag.ErrorCount() {
		t.Fatalf("CountErrors mismatch")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := driver.Parse(context.Background(), filepath.Join(t.TempDir(), "nope.bas"), driver.Options{})
	if err == nil {
		t.Fatalf("expected an error for a missing path")
	}
}

func TestTokenize(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.bas": "x = 1 ' c\n"})
	_, r, err := driver.Tokenize(context.Background(), filepath.Join(dir, "a.bas"), driver.Options{Timings: true})
	if err != nil {
		t.Fatal(err)
	}
	if r.Tree != nil {
		t.Fatalf("tokenize must not build a tree")
	}
	var kinds []syntax.Kind
	for _, tok := range r.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []syntax.Kind{syntax.Identifier, syntax.Whitespace, syntax.Equal, syntax.Whitespace,
		syntax.IntegerLiteral, syntax.Whitespace, syntax.Comment, syntax.Newline}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if !hasCode(r, diag.ObsTimings) {
		t.Fatalf("expected a timings diagnostic")
	}
}

func TestParseBytesEncoding(t *testing.T) {
	opts := driver.Options{Encoding: driver.EncodingUTF8}
	_, r, err := driver.ParseBytes(context.Background(), "<stdin>", []byte("x = \"\xe9\"\n"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if hasCode(r, diag.ObsInfo) {
		t.Fatalf("utf-8 mode must not transcode")
	}
	opts.Encoding = driver.EncodingWindows1252
	_, r, err = driver.ParseBytes(context.Background(), "<stdin>", []byte("x = \"\xe9\"\n"), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.Tree.Text(), "é") {
		t.Fatalf("text = %q", r.Tree.Text())
	}
}

func TestResources(t *testing.T) {
	frm := "VERSION 5.00\r\nBegin VB.Form Form1\r\n   Caption = \"Form1\"\r\n" +
		"   Tag = \"Form1.frx\":0000\r\n   Icon = \"Form1.frx\":0100\r\nEnd\r\n"
	dir := writeFiles(t, map[string]string{
		"Form1.frm": frm,
		"Form1.frx": "\x03abc",
	})
	_, r, err := driver.Parse(context.Background(), filepath.Join(dir, "Form1.frm"), driver.Options{Resources: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Resources) != 1 || string(r.Resources[0].Entry.Data) != "abc" || r.Resources[0].Key != "Tag" {
		t.Fatalf("resources = %+v", r.Resources)
	}
	if !hasCode(r, diag.ResOffsetOutOfBounds) {
		t.Fatalf("diagnostics = %v", r.Bag.Items())
	}
}

func TestDiskCache(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.bas": "If x Then\n"})
	cache, err := driver.OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Cache: cache}
	path := filepath.Join(dir, "bad.bas")

	_, first, err := driver.Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || !first.Bag.HasErrors() {
		t.Fatalf("first run: cached=%v diags=%v", first.Cached, first.Bag.Items())
	}
	_, second, err := driver.Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.Tree != nil {
		t.Fatalf("second run should come from cache")
	}
	if second.Bag.Len() != first.Bag.Len() || second.Bag.Items()[0].Code != first.Bag.Items()[0].Code {
		t.Fatalf("cached diagnostics differ: %v vs %v", second.Bag.Items(), first.Bag.Items())
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	_, third, err := driver.Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatalf("cache survived DropAll")
	}
}

func TestExport(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.bas": "x = 1\n@\n"})
	fileSet, results, err := driver.ParseDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := driver.Export(&buf, fileSet, results, driver.ExportJSON); err != nil {
		t.Fatal(err)
	}
	var files []driver.ExportedFile
	if err := json.Unmarshal(buf.Bytes(), &files); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, buf.String())
	}
	if len(files) != 1 || files[0].Root == nil || files[0].Root.Kind != "Root" {
		t.Fatalf("unexpected export: %+v", files)
	}
	if len(files[0].Diagnostics) == 0 || files[0].Diagnostics[0].Line != 2 {
		t.Fatalf("diagnostics = %+v", files[0].Diagnostics)
	}

	buf.Reset()
	if err := driver.Export(&buf, fileSet, results, driver.ExportMsgpack); err != nil {
		t.Fatal(err)
	}
	var decoded []driver.ExportedFile
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 || decoded[0].Root.End != uint32(len("x = 1\n@\n")) {
		t.Fatalf("msgpack export = %+v", decoded)
	}
}

func TestProgressEvents(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.bas": "x = 1\n", "b.bas": "@\n"})
	ch := make(chan driver.Event)
	var events []driver.Event
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range ch {
			events = append(events, ev)
		}
	}()
	_, _, err := driver.ParseDir(context.Background(), dir, driver.Options{Progress: ch})
	close(ch)
	wg.Wait()
	if err != nil {
		t.Fatal(err)
	}
	final := map[string]driver.Status{}
	for _, ev := range events {
		final[filepath.Base(ev.File)] = ev.Status
	}
	if final["a.bas"] != driver.StatusDone || final["b.bas"] != driver.StatusError {
		t.Fatalf("final statuses = %v", final)
	}
}

func TestCollect(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.FRM": "", "b.txt": "", "c/d.ctl": ""})
	got, err := driver.Collect([]string{dir, filepath.Join(dir, "b.txt")})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("Collect = %v", got)
	}
}
