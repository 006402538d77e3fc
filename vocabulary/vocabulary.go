package vocabulary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is anything that can list its phrases.
type Source interface {
	Phrases() []string
}

// IOError reports a failed vocabulary read or write.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("vocabulary %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Export writes one phrase per line to path.
// The file is written next to its destination and renamed into place.
func Export(src Source, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "export", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	writer := bufio.NewWriter(tmp)
	for _, phrase := range src.Phrases() {
		if _, err := fmt.Fprintln(writer, phrase); err != nil {
			cleanup()
			return &IOError{Op: "export", Path: path, Err: err}
		}
	}
	if err := writer.Flush(); err != nil {
		cleanup()
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "export", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &IOError{Op: "export", Path: path, Err: err}
	}
	return nil
}

// Read returns the non-empty lines of a vocabulary file. Lines are taken
// verbatim apart from the line terminator, since phrases may carry spaces.
func Read(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		word := strings.TrimRight(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return words, nil
}
