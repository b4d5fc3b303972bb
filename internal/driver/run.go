package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/form"
	"vb6parse/internal/lexer"
	"vb6parse/internal/observ"
	"vb6parse/internal/parser"
	"vb6parse/internal/source"
	"vb6parse/internal/token"
	"vb6parse/internal/trace"
)

// Result holds everything produced for one file.
type Result struct {
	Path   string
	FileID source.FileID
	// Tree is nil for tokenize runs, load failures and cache hits.
	Tree *cst.Tree
	// Tokens is set by the tokenize entry points only, EOF excluded.
	Tokens    []token.Token
	Bag       *diag.Bag
	Resources []form.Resource
	Timing    *observ.Report
	Cached    bool
	// Loaded is false when the file never made it into the FileSet.
	Loaded bool
}

type mode uint8

const (
	modeTokenize mode = iota
	modeParse
)

// Parse loads and parses a single file.
func Parse(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fileSet, res, err := run(ctx, []string{path}, opts, modeParse)
	if err != nil || len(res) == 0 {
		return fileSet, nil, err
	}
	return fileSet, res[0], nil
}

// ParseBytes parses in-memory content (stdin, editors) under name.
func ParseBytes(ctx context.Context, name string, content []byte, opts Options) (*source.FileSet, *Result, error) {
	fileSet := source.NewFileSet()
	id, err := addDecoded(fileSet, name, content, opts.Encoding, source.FileVirtual)
	if err != nil {
		return nil, nil, err
	}
	r := process(ctx, fileSet.Get(id), opts, modeParse)
	return fileSet, r, nil
}

// Tokenize loads and lexes a single file.
func Tokenize(ctx context.Context, path string, opts Options) (*source.FileSet, *Result, error) {
	fileSet, res, err := run(ctx, []string{path}, opts, modeTokenize)
	if err != nil || len(res) == 0 {
		return fileSet, nil, err
	}
	return fileSet, res[0], nil
}

// ParseDir parses every VB6 source under dir in parallel. Results are in
// path order.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	return ParseFiles(ctx, []string{dir}, opts)
}

// TokenizeDir lexes every VB6 source under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	return run(ctx, []string{dir}, opts, modeTokenize)
}

// ParseFiles accepts any mix of files and directories.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []*Result, error) {
	return run(ctx, paths, opts, modeParse)
}

func run(ctx context.Context, paths []string, opts Options, m mode) (*source.FileSet, []*Result, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "run", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")
	ctx = trace.WithSpanContext(ctx, trace.CurrentSpan(ctx).Under(span))

	files, err := Collect(paths)
	if err != nil {
		return nil, nil, err
	}
	base := ""
	if len(paths) == 1 {
		base = paths[0]
	}
	fileSet := source.NewFileSetWithBase(base)
	results := make([]*Result, len(files))

	// FileSet не потокобезопасен: загружаем всё до раздачи по горутинам
	loadSpan := trace.Begin(tr, trace.ScopePass, "load", span.ID())
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		opts.notify(path, StageLoad, StatusQueued)
		ids[i], loadErrs[i] = load(fileSet, path, opts.Encoding)
	}
	loadSpan.WithExtra("files", fmt.Sprint(len(files))).End("")

	if len(files) == 0 {
		return fileSet, results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs(len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErrs[i] != nil {
				results[i] = loadFailure(path, loadErrs[i], opts)
				return nil
			}
			results[i] = process(gctx, fileSet.Get(ids[i]), opts, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadFailure(path string, err error, opts Options) *Result {
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
	opts.notify(path, StageLoad, StatusError)
	return &Result{Path: path, Bag: bag}
}

// process runs lex or parse (and resources) over one loaded file.
func process(ctx context.Context, file *source.File, opts Options, m mode) *Result {
	tr := trace.FromContext(ctx)
	sc := trace.CurrentSpan(ctx).ForFile(file)
	fileSpan := trace.Begin(tr, trace.ScopeFile, "file:"+filepath.Base(file.Path), sc.SpanID)
	defer fileSpan.End("")
	sc = sc.Under(fileSpan)

	res := &Result{Path: file.Path, FileID: file.ID, Bag: diag.NewBag(opts.MaxDiagnostics), Loaded: true}
	cacheable := opts.Cache != nil && m == modeParse && !opts.Resources
	if cacheable && opts.Cache.lookup(file, opts, res) {
		opts.notify(file.Path, StageParse, StatusDone)
		return res
	}
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})
	timer := observ.NewTimer()

	if file.Flags&source.FileDecoded1252 != 0 {
		diag.ReportInfo(rep, diag.ObsInfo, source.Span{File: file.ID}, "decoded as windows-1252").Emit()
	}

	switch m {
	case modeTokenize:
		opts.notify(file.Path, StageLex, StatusWorking)
		idx := timer.Begin("lex")
		sp := trace.Begin(tr, trace.ScopePass, "lex", fileSpan.ID())
		res.Tokens = lexer.New(file, lexer.Options{Reporter: rep}).All()
		sp.WithExtra("tokens", fmt.Sprint(len(res.Tokens))).End("")
		timer.End(idx, fmt.Sprintf("%d tokens", len(res.Tokens)))

	case modeParse:
		opts.notify(file.Path, StageParse, StatusWorking)
		idx := timer.Begin("parse")
		sp := trace.Begin(tr, trace.ScopePass, "parse", fileSpan.ID())
		pr := parser.ParseFile(file, parser.Options{MaxErrors: opts.MaxErrors, Reporter: rep, Tracer: tr, Trace: sc.Under(sp)})
		res.Tree = pr.Tree
		sp.WithExtra("nodes", fmt.Sprint(pr.Tree.NodeCount())).End("")
		timer.End(idx, fmt.Sprintf("%d nodes", pr.Tree.NodeCount()))

		if opts.Resources && hasResources(file.Path) {
			opts.notify(file.Path, StageResources, StatusWorking)
			idx = timer.Begin("resources")
			sp = trace.Begin(tr, trace.ScopePass, "resources", fileSpan.ID())
			res.Resources = form.NewResolver(filepath.Dir(filepath.FromSlash(file.Path))).ResolveAll(res.Tree, rep)
			sp.WithExtra("resolved", fmt.Sprint(len(res.Resources))).End("")
			timer.End(idx, fmt.Sprintf("%d resolved", len(res.Resources)))
		}
	}

	report := timer.Report()
	res.Timing = &report
	if opts.Timings {
		appendTimings(res.Bag, file.ID, file.Path, report)
	}
	res.Bag.Sort()
	if cacheable {
		opts.Cache.store(file, opts, res)
	}

	status, stage := StatusDone, StageParse
	if res.Bag.HasErrors() {
		status = StatusError
	}
	if m == modeTokenize {
		stage = StageLex
	}
	opts.notify(file.Path, stage, status)
	return res
}

// hasResources: только у форм и пользовательских контролов бывают .frx/.ctx.
func hasResources(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".frm", ".ctl", ".dob", ".pag", ".dsr":
		return true
	}
	return false
}
