package transfer

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/teatak/transfer/dictionary"
	"github.com/teatak/transfer/segmenter"
)

func newTranslator(t *testing.T, entries map[string]string) *Translator {
	t.Helper()
	dict := dictionary.New(entries)
	seg := segmenter.NewLongestMatch()
	if err := seg.LoadWords(dict.Phrases()); err != nil {
		t.Fatal(err)
	}
	return New(dict, seg)
}

func TestTransfer(t *testing.T) {
	tr := newTranslator(t, map[string]string{"你好": "hello", "世界": "world"})

	r, err := tr.Transfer("你好世界")
	if err != nil {
		t.Fatalf("Transfer() error = %v", err)
	}
	if !reflect.DeepEqual(r.Units, []string{"你好", "世界"}) {
		t.Errorf("Units = %v", r.Units)
	}
	if r.Joined != "hello_world" {
		t.Errorf("Joined = %q, want hello_world", r.Joined)
	}
	if token, ok := r.Mapping.Get("世界"); !ok || token != "world" {
		t.Errorf("Mapping.Get('世界') = %q, %v", token, ok)
	}
}

func TestTransfer_Filler(t *testing.T) {
	tr := newTranslator(t, map[string]string{"你好": "hello"})

	r, err := tr.Transfer("你好吗")
	if err != nil {
		t.Fatalf("Transfer() error = %v", err)
	}
	if !reflect.DeepEqual(r.Units, []string{"你好", "吗"}) {
		t.Errorf("Units = %v", r.Units)
	}
	if r.Joined != "hello" {
		t.Errorf("Joined = %q, want hello", r.Joined)
	}
	if _, ok := r.Mapping.Get("吗"); ok {
		t.Errorf("filler unit should have no token")
	}
	if !reflect.DeepEqual(r.Mapping.Unmatched(), []string{"吗"}) {
		t.Errorf("Unmatched() = %v", r.Mapping.Unmatched())
	}
}

func TestTransfer_NoMatch(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
		input   string
	}{
		{"empty dictionary", nil, "你好世界"},
		{"empty input", map[string]string{"你好": "hello"}, ""},
		{"only fillers", map[string]string{"你好": "hello"}, "今天天气"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslator(t, tt.entries)
			r, err := tr.Transfer(tt.input)
			if !errors.Is(err, ErrNoMatch) {
				t.Fatalf("Transfer(%q) error = %v, want ErrNoMatch", tt.input, err)
			}
			if r == nil || r.Joined != "" || r.Matched() {
				t.Errorf("Transfer(%q) = %+v, want empty result", tt.input, r)
			}
		})
	}
}

func TestTransfer_RepeatedUnit(t *testing.T) {
	tr := newTranslator(t, map[string]string{"你好": "hello"})

	r, err := tr.Transfer("你好你好")
	if err != nil {
		t.Fatal(err)
	}
	if r.Joined != "hello_hello" {
		t.Errorf("Joined = %q, want hello_hello", r.Joined)
	}
	if r.Mapping.Len() != 1 {
		t.Errorf("Mapping.Len() = %d, want 1", r.Mapping.Len())
	}
}

func TestResolve_KeySet(t *testing.T) {
	dict := dictionary.New(map[string]string{"南京": "nanjing", "大桥": "bridge"})
	units := []string{"南京", "市", "大桥", "市"}

	m := Resolve(units, dict)
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"南京":"nanjing","市":null,"大桥":"bridge"}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	if !reflect.DeepEqual(m.Unmatched(), []string{"市"}) {
		t.Errorf("Unmatched() = %v", m.Unmatched())
	}
}

func TestCompose(t *testing.T) {
	dict := dictionary.New(map[string]string{"甲": "a", "乙": "b"})

	tests := []struct {
		order []string
		want  string
	}{
		{[]string{"甲", "乙"}, "a_b"},
		{[]string{"乙", "丙", "甲"}, "b_a"},
		{[]string{"丙"}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		m := Resolve(tt.order, dict)
		if got := Compose(m, tt.order); got != tt.want {
			t.Errorf("Compose(%v) = %q, want %q", tt.order, got, tt.want)
		}
	}
}

func TestResult_JSON(t *testing.T) {
	tr := newTranslator(t, map[string]string{"你好": "hello"})
	r, _ := tr.Transfer("你好吗")

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"input_word":"你好吗","cut":["你好","吗"],"mapping":{"你好":"hello","吗":null},"result":"hello"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}
