package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lwch/logging"
	"github.com/teatak/transfer/transfer"
)

const (
	Prompt    = "输出中文词:"
	NoMatch   = "没有匹配到输入词"
	maxLine   = 1024 * 1024
	separator = "\n"
)

// Run prompts for a phrase, prints its translation, and repeats until in is
// exhausted or ctx is done. rec may be nil.
func Run(ctx context.Context, in io.Reader, out io.Writer, tr *transfer.Translator, rec transfer.Recorder) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, maxLine)
	scanner.Buffer(buf, maxLine)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(out, Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			io.WriteString(out, separator)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if _, err := fmt.Fprintln(out, Translate(tr, rec, line)); err != nil {
			return err
		}
	}
}

// Translate returns the line to show for input: the composed tokens, or
// the no-match message.
func Translate(tr *transfer.Translator, rec transfer.Recorder, input string) string {
	r, err := tr.Transfer(input)
	if rec != nil {
		if rerr := rec.Record(r); rerr != nil {
			logging.Error("record %q: %v", input, rerr)
		}
	}
	if errors.Is(err, transfer.ErrNoMatch) {
		return NoMatch
	}
	return r.Joined
}
