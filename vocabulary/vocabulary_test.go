package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/teatak/transfer/dictionary"
)

func TestExport(t *testing.T) {
	dict := dictionary.New(map[string]string{
		"你好":   "hello",
		"世界":   "world",
		"长江大桥": "bridge",
	})
	path := filepath.Join(t.TempDir(), "data", "vocab.txt")

	if err := Export(dict, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "世界\n你好\n长江大桥\n"
	if string(content) != want {
		t.Errorf("Export() wrote %q, want %q", content, want)
	}

	words, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(words, dict.Phrases()) {
		t.Errorf("Read() = %v, want %v", words, dict.Phrases())
	}
}

func TestExport_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("旧词\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Export(dictionary.New(map[string]string{"新词": "new"}), path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	words, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(words, []string{"新词"}) {
		t.Errorf("Read() = %v, want [新词]", words)
	}
}

func TestExport_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := Export(dictionary.New(nil), path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	words, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 0 {
		t.Errorf("Read() = %v, want empty", words)
	}
}

func TestExport_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Export(dictionary.New(nil), filepath.Join(blocker, "vocab.txt"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Export() error = %v, want *IOError", err)
	}
	if ioErr.Op != "export" {
		t.Errorf("IOError.Op = %q, want export", ioErr.Op)
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read() error = %v, want os.ErrNotExist", err)
	}
}

func TestExport_PhraseWithEdgeSpace(t *testing.T) {
	dict, err := dictionary.LoadReader("words.txt", strings.NewReader("你好 ,hello\n世界,world\n"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := Export(dict, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	words, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(words, dict.Phrases()) {
		t.Errorf("Read() = %q, want %q", words, dict.Phrases())
	}
	for _, word := range words {
		if _, ok := dict.Lookup(word); !ok {
			t.Errorf("vocabulary phrase %q has no dictionary entry", word)
		}
	}
}

func TestRead_CRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("你好\r\n\r\n世界\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	words, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"你好", "世界"}; !reflect.DeepEqual(words, want) {
		t.Errorf("Read() = %q, want %q", words, want)
	}
}
