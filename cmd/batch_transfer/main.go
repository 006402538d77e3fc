package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bsthun/gut"
	"github.com/lwch/logging"
	"github.com/teatak/transfer/bootstrap"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/transfer"
)

func main() {
	inputPath := flag.String("input", "data/text.txt", "Input file path, one phrase per line")
	outputPath := flag.String("output", "data/transfer.tsv", "Output file path (input<TAB>result)")
	dictPath := flag.String("dict", "", "Path to dictionary file (overrides config)")
	flag.Parse()

	// 1. Build translator
	cfg := config.Init()
	if *dictPath != "" {
		cfg.Dictionary = *dictPath
	}
	tr, err := bootstrap.Build(cfg)
	if err != nil {
		gut.Fatal("Unable to build translator", err)
	}

	// 2. Open files
	inFile, err := os.Open(*inputPath)
	if err != nil {
		gut.Fatal("Unable to open input file", err)
	}
	defer inFile.Close()

	outFile, err := os.Create(*outputPath)
	if err != nil {
		gut.Fatal("Unable to create output file", err)
	}
	defer outFile.Close()

	// 3. Process
	count, matched, err := process(tr, inFile, outFile)
	if err != nil {
		gut.Fatal("Unable to process input file", err)
	}
	logging.Info("done: %d lines, %d matched, saved to %s", count, matched, *outputPath)
}

// process writes `line<TAB>result` to out for every non-blank line of in.
// Unmatched lines keep an empty result column.
func process(tr *transfer.Translator, in io.Reader, out io.Writer) (count, matched int, err error) {
	writer := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		r, err := tr.Transfer(line)
		if err == nil {
			matched++
		} else if !errors.Is(err, transfer.ErrNoMatch) {
			return count, matched, fmt.Errorf("transfer %q: %w", line, err)
		}

		if _, err := fmt.Fprintf(writer, "%s\t%s\n", line, r.Joined); err != nil {
			return count, matched, fmt.Errorf("write output: %w", err)
		}
		count++
		if count%1000 == 0 {
			logging.Info("processed %d lines...", count)
		}
	}
	if err := scanner.Err(); err != nil {
		return count, matched, fmt.Errorf("read input: %w", err)
	}
	if err := writer.Flush(); err != nil {
		return count, matched, fmt.Errorf("write output: %w", err)
	}
	return count, matched, nil
}
