package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"vb6parse/internal/diag"
	"vb6parse/internal/source"
	"vb6parse/internal/version"
)

// diskCacheSchema меняется вместе с форматом cachedRun.
const diskCacheSchema uint16 = 1

// DiskCache stores the diagnostics of previous parses keyed by file content
// and the options that affect them. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedRun struct {
	Schema      uint16
	Path        string
	Diagnostics []diag.Diagnostic
}

// OpenDiskCache uses dir, or $XDG_CACHE_HOME/vb6parse (~/.cache/vb6parse)
// when dir is empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "vb6parse")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func cacheKey(file *source.File, opts Options) string {
	h := sha256.New()
	_, _ = h.Write(file.Hash[:])
	_, _ = h.Write([]byte(version.Version))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(opts.MaxErrors))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(max(opts.MaxDiagnostics, 0)))
	_, _ = h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil))
}

func (c *DiskCache) pathFor(key string) string {
	return filepath.Join(c.dir, "runs", key[:2], key+".mp")
}

// put writes run atomically under key.
func (c *DiskCache) put(key string, run *cachedRun) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck
	if err := msgpack.NewEncoder(f).Encode(run); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

func (c *DiskCache) get(key string, out *cachedRun) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close() //nolint:errcheck
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchema, nil
}

// lookup fills res from the cache. Spans are rebound to the current FileID.
// A corrupt entry counts as a miss.
func (c *DiskCache) lookup(file *source.File, opts Options, res *Result) bool {
	var run cachedRun
	ok, err := c.get(cacheKey(file, opts), &run)
	if err != nil || !ok {
		return false
	}
	for _, d := range run.Diagnostics {
		d.Primary.File = file.ID
		for i := range d.Notes {
			d.Notes[i].Span.File = file.ID
		}
		for i := range d.Fixes {
			for j := range d.Fixes[i].Edits {
				d.Fixes[i].Edits[j].Span.File = file.ID
			}
		}
		res.Bag.Add(d)
	}
	res.Cached = true
	return true
}

func (c *DiskCache) store(file *source.File, opts Options, res *Result) {
	var kept []diag.Diagnostic
	for _, d := range res.Bag.Items() {
		// тайминги от прошлого прогона бессмысленны
		if d.Code != diag.ObsTimings {
			kept = append(kept, d)
		}
	}
	// ошибки записи кэша не мешают разбору
	_ = c.put(cacheKey(file, opts), &cachedRun{Schema: diskCacheSchema, Path: file.Path, Diagnostics: kept})
}

// DropAll removes every cached run.
func (c *DiskCache) DropAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "runs"))
}
