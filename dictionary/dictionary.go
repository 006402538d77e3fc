package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Separator splits a source line into phrase and token.
const Separator = ","

// Policy decides what happens when a phrase appears twice in a source.
type Policy string

const (
	PolicyOverwrite Policy = "overwrite" // PolicyOverwrite keeps the last entry for a phrase.
	PolicyReject    Policy = "reject"    // PolicyReject fails the load on a repeated phrase.
)

var (
	ErrOpen         = errors.New("dictionary: cannot open source")
	ErrMissingComma = errors.New("dictionary: line has no comma separator")
	ErrEmptyPhrase  = errors.New("dictionary: empty phrase")
	ErrEmptyToken   = errors.New("dictionary: empty token")
	ErrDuplicate    = errors.New("dictionary: duplicate phrase")
)

// LoadError reports why a dictionary source could not be loaded.
// Line is 1-based and zero when the failure is not tied to a line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Option configures a load.
type Option func(*options)

type options struct {
	policy Policy
}

// WithPolicy sets the duplicate phrase policy. Unknown values fall back to overwrite.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p == PolicyReject {
			o.policy = PolicyReject
			return
		}
		o.policy = PolicyOverwrite
	}
}

// Dictionary maps Chinese phrases to tokens. It is read-only once loaded.
type Dictionary struct {
	words map[string]string
}

// New returns a dictionary built from an in-memory table.
// Tokens are normalized the same way a file load normalizes them.
func New(entries map[string]string) *Dictionary {
	d := &Dictionary{words: make(map[string]string, len(entries))}
	for phrase, token := range entries {
		d.words[phrase] = normalizeToken(token)
	}
	return d
}

// Load reads a `phrase,token` file.
func Load(path string, opts ...Option) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer file.Close()
	return loadFrom(path, file, opts...)
}

// LoadReader reads a `phrase,token` table from r. name is used in errors.
func LoadReader(name string, r io.Reader, opts ...Option) (*Dictionary, error) {
	return loadFrom(name, r, opts...)
}

func loadFrom(name string, r io.Reader, opts ...Option) (*Dictionary, error) {
	o := options{policy: PolicyOverwrite}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dictionary{words: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		phrase, raw, ok := strings.Cut(line, Separator)
		if !ok {
			return nil, &LoadError{Path: name, Line: lineNo, Err: ErrMissingComma}
		}
		if phrase == "" {
			return nil, &LoadError{Path: name, Line: lineNo, Err: ErrEmptyPhrase}
		}
		token := normalizeToken(raw)
		if token == "" {
			return nil, &LoadError{Path: name, Line: lineNo, Err: ErrEmptyToken}
		}
		if _, exists := d.words[phrase]; exists && o.policy == PolicyReject {
			return nil, &LoadError{Path: name, Line: lineNo, Err: fmt.Errorf("%w: %q", ErrDuplicate, phrase)}
		}
		d.words[phrase] = token
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Line: lineNo, Err: err}
	}
	return d, nil
}

func normalizeToken(raw string) string {
	return strings.Trim(raw, "_")
}

// Lookup returns the token for phrase.
func (d *Dictionary) Lookup(phrase string) (string, bool) {
	token, ok := d.words[phrase]
	return token, ok
}

// Len returns the number of phrases.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Phrases returns every phrase in byte order.
func (d *Dictionary) Phrases() []string {
	phrases := make([]string, 0, len(d.words))
	for phrase := range d.words {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}
