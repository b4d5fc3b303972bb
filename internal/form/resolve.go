package form

import (
	"fmt"
	"path/filepath"

	"vb6parse/internal/cst"
	"vb6parse/internal/diag"
	"vb6parse/internal/frx"
)

// Resource is a resolved reference.
type Resource struct {
	Reference
	Entry frx.Entry
}

// Resolver opens each resource file once and answers lookups from memory.
type Resolver struct {
	Dir   string
	files map[string]*frx.ResourceFile
	errs  map[string]error
}

func NewResolver(dir string) *Resolver {
	return &Resolver{Dir: dir, files: make(map[string]*frx.ResourceFile), errs: make(map[string]error)}
}

func (r *Resolver) open(name string) (*frx.ResourceFile, error) {
	if f, ok := r.files[name]; ok {
		return f, nil
	}
	if err, ok := r.errs[name]; ok {
		return nil, err
	}
	// ошибки сканирования всплывут при Resolve конкретной записи
	f, err := frx.Open(filepath.Join(r.Dir, name), nil)
	if err != nil {
		r.errs[name] = err
		return nil, err
	}
	r.files[name] = f
	return f, nil
}

// Resolve looks up one reference.
func (r *Resolver) Resolve(ref Reference) (frx.Entry, error) {
	f, err := r.open(ref.File)
	if err != nil {
		return frx.Entry{}, err
	}
	e, err := f.EntryAt(ref.Offset)
	if err != nil {
		return frx.Entry{}, fmt.Errorf("%s %s.%s at %#x: %w", ref.File, ref.Control, ref.Key, ref.Offset, err)
	}
	return e, nil
}

// ResolveAll resolves every reference in tree. Failures are reported at
// the property line and skipped.
func (r *Resolver) ResolveAll(tree *cst.Tree, rep diag.Reporter) []Resource {
	refs := References(tree)
	out := make([]Resource, 0, len(refs))
	for _, ref := range refs {
		e, err := r.Resolve(ref)
		if err != nil {
			if rep != nil {
				diag.ReportWarning(rep, frx.Code(err), ref.Span, err.Error()).Emit()
			}
			continue
		}
		out = append(out, Resource{Reference: ref, Entry: e})
	}
	return out
}
