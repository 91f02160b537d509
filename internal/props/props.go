// Package props implements properties with transparently encrypted values.
//
// Encrypted values are stored as `<sealed-value><suffix>`: the presence of
// the suffix marks a value as encrypted, its absence marks it as plaintext.
// The default suffix is "xa3s". Plaintext and encrypted values can be mixed
// freely in the same set.
package props

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/allisson/cryptobox/internal/crypto/service"
	"github.com/allisson/cryptobox/internal/errors"
)

// DefaultSuffix marks encrypted values.
const DefaultSuffix = "xa3s"

var (
	// ErrBlankSuffix indicates a suffix that is empty after trimming.
	ErrBlankSuffix = errors.Wrap(errors.ErrInvalidInput, "suffix cannot be blank")

	// ErrKeyNotFound indicates the key is absent from the properties and
	// the defaults chain.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "property key not found")
)

// Properties holds string key/value pairs where values may be stored
// encrypted. Safe for concurrent use.
type Properties struct {
	mu       sync.RWMutex
	values   map[string]string
	layout   []fileLine
	suffix   string
	sealer   service.Sealer
	defaults *Properties
}

// fileLine records the original file order so comments and blank lines
// survive a load/save round trip. Either text (comment or blank line,
// verbatim) or key is set, never both.
type fileLine struct {
	text string
	key  string
}

// Option configures a Properties instance.
type Option func(*Properties)

// WithSuffix overrides the default encrypted-value suffix. The suffix is
// trimmed before use.
func WithSuffix(suffix string) Option {
	return func(p *Properties) {
		p.suffix = strings.TrimSpace(suffix)
	}
}

// WithDefaults sets a fallback Properties consulted when a key is missing.
func WithDefaults(defaults *Properties) Option {
	return func(p *Properties) {
		p.defaults = defaults
	}
}

// New creates a Properties instance using the given sealer for encrypted
// values.
func New(sealer service.Sealer, opts ...Option) (*Properties, error) {
	p := &Properties{
		values: make(map[string]string),
		suffix: DefaultSuffix,
		sealer: sealer,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.suffix == "" {
		return nil, ErrBlankSuffix
	}

	return p, nil
}

// Set stores a plaintext value.
func (p *Properties) Set(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value
}

// SetEncrypted seals the value and stores it with the encrypted-value suffix.
func (p *Properties) SetEncrypted(key, value string) error {
	sealed, err := p.sealer.EncryptString(value)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = sealed + p.suffix

	return nil
}

// Get returns the decrypted view of a value: encrypted values are unsealed,
// plaintext values are returned as stored. Missing keys fall back to the
// defaults chain and finally to ErrKeyNotFound.
func (p *Properties) Get(key string) (string, error) {
	stored, err := p.GetOriginal(key)
	if err != nil {
		return "", err
	}

	if !strings.HasSuffix(stored, p.suffix) {
		return stored, nil
	}

	return p.sealer.DecryptString(strings.TrimSuffix(stored, p.suffix))
}

// GetOriginal returns the stored form of a value, encrypted or not. Missing
// keys fall back to the defaults chain.
func (p *Properties) GetOriginal(key string) (string, error) {
	p.mu.RLock()
	stored, ok := p.values[key]
	p.mu.RUnlock()
	if ok {
		return stored, nil
	}

	if p.defaults != nil {
		return p.defaults.GetOriginal(key)
	}

	return "", errors.Wrap(ErrKeyNotFound, key)
}

// IsEncrypted reports whether the stored value carries the encrypted-value
// suffix. Missing keys report false.
func (p *Properties) IsEncrypted(key string) bool {
	stored, err := p.GetOriginal(key)
	if err != nil {
		return false
	}

	return strings.HasSuffix(stored, p.suffix)
}

// ValidateValue reports whether the decrypted view of the value equals the
// expected string. Missing keys and failed decryptions report false.
func (p *Properties) ValidateValue(key, expected string) bool {
	value, err := p.Get(key)
	if err != nil {
		return false
	}

	return value == expected
}

// Delete removes a key. The defaults chain is not touched.
func (p *Properties) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.values, key)
}

// Keys returns the keys of this instance in sorted order. Defaults are not
// included.
func (p *Properties) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Load reads `key=value` lines. Blank lines and lines starting with `#` or
// `!` carry no values but are kept verbatim so Save can reproduce them.
// Values are stored as-is, so previously saved encrypted values stay
// encrypted.
func (p *Properties) Load(r io.Reader) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			p.layout = append(p.layout, fileLine{text: raw})
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("invalid property line: %q", line))
		}

		key = strings.TrimSpace(key)
		p.values[key] = strings.TrimSpace(value)
		p.layout = append(p.layout, fileLine{key: key})
	}

	return scanner.Err()
}

// Save writes the loaded lines in their original order, comments and blank
// lines included, then appends keys added since the load in sorted order.
// Deleted keys are dropped.
func (p *Properties) Save(w io.Writer) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	written := make(map[string]bool, len(p.values))

	for _, line := range p.layout {
		if line.key == "" {
			if _, err := fmt.Fprintln(w, line.text); err != nil {
				return err
			}
			continue
		}

		value, ok := p.values[line.key]
		if !ok || written[line.key] {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", line.key, value); err != nil {
			return err
		}
		written[line.key] = true
	}

	added := make([]string, 0, len(p.values))
	for key := range p.values {
		if !written[key] {
			added = append(added, key)
		}
	}
	sort.Strings(added)

	for _, key := range added {
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, p.values[key]); err != nil {
			return err
		}
	}

	return nil
}

// LoadFile loads properties from a file.
func (p *Properties) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open properties file")
	}
	defer f.Close()

	return p.Load(f)
}

// SaveFile writes properties to a file with owner-only permissions.
func (p *Properties) SaveFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Wrap(err, "create properties file")
	}

	if err := p.Save(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
