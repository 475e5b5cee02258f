package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsxwrap/internal/rule"
	"jsxwrap/internal/source"
)

// Bump when the payload format or the rule semantics change.
const cacheSchemaVersion uint16 = 1

// Digest is a sha256 cache key.
type Digest [sha256.Size]byte

// ResultCache remembers clean verdicts per file-content-and-config digest so
// unchanged files are skipped on the next run. Only clean files are cached:
// a flagged file's diagnostics carry lazy fixes bound to live source, which
// are cheaper to recompute than to serialize. Thread-safe.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the stored verdict.
type CachePayload struct {
	Schema      uint16
	ToolVersion string
	Clean       bool
}

// OpenResultCache initializes the cache at the standard user location.
func OpenResultCache(app string) (*ResultCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ResultCache{dir: dir}, nil
}

// CacheKey digests a file's content hash together with the rule config and
// schema version. Any change to the file, the toggles, or the rule itself
// produces a new key.
func CacheKey(file *source.File, cfg rule.Config, toolVersion string) Digest {
	h := sha256.New()
	h.Write(file.Hash[:])

	var bits byte
	for i, on := range []bool{
		cfg.Declaration, cfg.Assignment, cfg.Return, cfg.Arrow,
		cfg.Condition, cfg.Logical, cfg.Prop,
	} {
		if on {
			bits |= 1 << i
		}
	}
	h.Write([]byte{bits, byte(cacheSchemaVersion), byte(cacheSchemaVersion >> 8)})
	h.Write([]byte(toolVersion))

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *ResultCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "verdicts", hex.EncodeToString(key[:])+".mp")
}

// Put writes a verdict atomically.
func (c *ResultCache) Put(key Digest, payload *CachePayload) error {
	if c == nil {
		return nil
	}
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
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a verdict. A missing entry or a schema mismatch is a miss, not
// an error.
func (c *ResultCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache.
func (c *ResultCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
