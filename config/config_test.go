package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "dictionary: data/words.txt\nduplicates: reject\njournal: data/unmatched\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := &Config{
		Dictionary: "data/words.txt",
		Vocabulary: "jieba_dict.txt",
		Duplicates: "reject",
		Listen:     ":8000",
		Journal:    "data/unmatched",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	got, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("Load() = %+v, want defaults", got)
	}

	if _, err := Load(path, false); err == nil {
		t.Errorf("Load() on a missing required file should fail")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "dictionary: [\n"},
		{"bad policy", "duplicates: merge\n"},
		{"empty dictionary", "dictionary: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, false); err == nil {
				t.Errorf("Load() should reject %q", tt.content)
			}
		})
	}
}
