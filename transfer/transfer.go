package transfer

import (
	"errors"
	"strings"
)

// Separator joins tokens in a composed result.
const Separator = "_"

// ErrNoMatch means no unit of the input had a token.
var ErrNoMatch = errors.New("transfer: no match")

// Segmenter cuts input into units.
type Segmenter interface {
	Segment(text string) []string
}

// Recorder receives translation results after they are produced.
type Recorder interface {
	Record(r *Result) error
}

// Result is the outcome of one translation.
type Result struct {
	Input   string   `json:"input_word"`
	Units   []string `json:"cut"`
	Mapping *Mapping `json:"mapping"`
	Joined  string   `json:"result"`
}

// Matched reports whether the result carries at least one token.
func (r *Result) Matched() bool {
	return r.Joined != ""
}

// Compose joins the tokens of matched units in the given order.
// A unit that occurs twice in order contributes its token twice.
func Compose(m *Mapping, order []string) string {
	tokens := make([]string, 0, len(order))
	for _, unit := range order {
		if token, ok := m.Get(unit); ok {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, Separator)
}

// Translator runs segmentation, resolution and composition over a fixed
// dictionary and segmenter. It holds no mutable state and may be shared.
type Translator struct {
	dict Dictionary
	seg  Segmenter
}

// New creates a translator. dict and seg must not change afterwards.
func New(dict Dictionary, seg Segmenter) *Translator {
	return &Translator{dict: dict, seg: seg}
}

// Transfer translates input. When nothing matches the result is still
// returned together with ErrNoMatch.
func (t *Translator) Transfer(input string) (*Result, error) {
	units := t.seg.Segment(input)
	mapping := Resolve(units, t.dict)
	r := &Result{
		Input:   input,
		Units:   units,
		Mapping: mapping,
		Joined:  Compose(mapping, units),
	}
	if !r.Matched() {
		return r, ErrNoMatch
	}
	return r, nil
}
