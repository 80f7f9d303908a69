package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"numlit/internal/diag"
	"numlit/internal/parsenum"
	"numlit/internal/source"
	"numlit/internal/token"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// CacheKey identifies a scan result: file content plus parser configuration.
type CacheKey [32]byte

func (k CacheKey) String() string { return hex.EncodeToString(k[:]) }

// ResultCache keeps scan results on disk as msgpack, one file per key.
// Thread-safe for concurrent access.
type ResultCache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema      uint16
	Literals    []cacheLiteral
	Diagnostics []cacheDiagnostic
}

type cacheLiteral struct {
	Start, End uint32
	Line       uint32
	Kind       uint8
	Text       string
	Int        string // decimal, IntLit only
	NumKind    uint8
	Real, Imag float64
}

type cacheNote struct {
	Start, End uint32
	Msg        string
}

type cacheDiagnostic struct {
	Severity   uint8
	Code       uint16
	Message    string
	Start, End uint32
	Notes      []cacheNote
}

// DefaultCacheDir returns $XDG_CACHE_HOME/app, falling back to ~/.cache/app.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenResultCache creates dir if needed and returns a cache rooted there.
func OpenResultCache(dir string) (*ResultCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open result cache: %w", err)
	}
	return &ResultCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *ResultCache) Dir() string { return c.dir }

// Key derives the cache key for file scanned under cfg.
func (c *ResultCache) Key(file *source.File, cfg parsenum.Config) CacheKey {
	h := sha256.New()
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], cacheSchemaVersion)
	h.Write(buf[:])
	h.Write(file.Hash[:])
	fmt.Fprintf(h, "|%d|%t|%t|%s", cfg.SmallIntBits, cfg.DisableFloat, cfg.DisableComplex, cfg.Reporting)
	var key CacheKey
	copy(key[:], h.Sum(nil))
	return key
}

func (c *ResultCache) pathFor(key CacheKey) string {
	hexKey := key.String()
	return filepath.Join(c.dir, "scan", hexKey[:2], hexKey+".mp")
}

// Store serializes res under key.
func (c *ResultCache) Store(key CacheKey, res *FileResult) error {
	if c == nil {
		return nil
	}
	payload := toPayload(res)

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
	tmp := f.Name()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Load fills res from the entry under key. It reports false on a miss or on
// an entry written by another schema version.
func (c *ResultCache) Load(key CacheKey, file *source.File, p *parsenum.Parser, res *FileResult) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if payload.Schema != cacheSchemaVersion {
		return false, nil
	}
	if err := fromPayload(&payload, file, p, res); err != nil {
		return false, fmt.Errorf("cache entry %s: %w", key, err)
	}
	res.Cached = true
	return true, nil
}

// Clear removes every cached entry.
func (c *ResultCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "scan"))
}

func toPayload(res *FileResult) *cachePayload {
	payload := &cachePayload{
		Schema:   cacheSchemaVersion,
		Literals: make([]cacheLiteral, len(res.Literals)),
	}
	for i, lit := range res.Literals {
		cl := cacheLiteral{
			Start: lit.Span.Start,
			End:   lit.Span.End,
			Line:  lit.Line,
			Kind:  uint8(lit.Kind),
			Text:  lit.Text,
		}
		if lit.Kind == token.IntLit {
			cl.Int = lit.Int.String()
		} else {
			cl.NumKind = uint8(lit.Number.Kind)
			if lit.Number.Kind == parsenum.KindComplex {
				cl.Real, cl.Imag = real(lit.Number.Complex), imag(lit.Number.Complex)
			} else {
				cl.Real = lit.Number.Float
			}
		}
		payload.Literals[i] = cl
	}
	for _, d := range res.Bag.Items() {
		if d.Code == diag.IOCacheError {
			continue
		}
		cd := cacheDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cacheNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

func fromPayload(payload *cachePayload, file *source.File, p *parsenum.Parser, res *FileResult) error {
	res.Literals = make([]Literal, 0, len(payload.Literals))
	for _, cl := range payload.Literals {
		lit := Literal{
			Span: source.Span{File: file.ID, Start: cl.Start, End: cl.End},
			Line: cl.Line,
			Kind: token.Kind(cl.Kind),
			Text: cl.Text,
		}
		if lit.Kind == token.IntLit {
			v, err := p.Integer([]byte(cl.Int), 10, nil)
			if err != nil {
				return fmt.Errorf("literal %q: %w", cl.Text, err)
			}
			lit.Int = v
		} else if parsenum.Kind(cl.NumKind) == parsenum.KindComplex {
			lit.Number = parsenum.ComplexNumber(complex(cl.Real, cl.Imag))
		} else {
			lit.Number = parsenum.FloatNumber(cl.Real)
		}
		res.Literals = append(res.Literals, lit)
	}
	for _, cd := range payload.Diagnostics {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: file.ID, Start: n.Start, End: n.End}, Msg: n.Msg})
		}
		res.Bag.Add(d)
	}
	return nil
}
