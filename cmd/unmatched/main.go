package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bsthun/gut"
	"github.com/lwch/logging"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/journal"
)

// Lists input fragments that the dictionary could not map, so that they can
// be reviewed and added to the dictionary file.
func main() {
	journalPath := flag.String("journal", "", "Path to the journal database (overrides config)")
	threshold := flag.Uint64("threshold", 2, "Minimum count for a fragment to be listed")
	outputPath := flag.String("output", "", "Output file path (default stdout)")
	flag.Parse()

	path := *journalPath
	if path == "" {
		path = config.Init().Journal
	}
	if path == "" {
		gut.Fatal("Journal path is required. Set journal in config or use -journal flag.", fmt.Errorf("missing journal path"))
	}

	j, err := journal.Open(path)
	if err != nil {
		gut.Fatal("Unable to open journal", err)
	}
	defer j.Close()

	candidates, err := j.Candidates(*threshold)
	if err != nil {
		gut.Fatal("Unable to read journal", err)
	}

	var out io.Writer = os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			gut.Fatal("Unable to create output file", err)
		}
		defer f.Close()
		out = f
	}

	writer := bufio.NewWriter(out)
	for _, c := range candidates {
		fmt.Fprintf(writer, "%s %d\n", c.Text, c.Count)
	}
	if err := writer.Flush(); err != nil {
		gut.Fatal("Unable to write candidates", err)
	}
	logging.Info("%d fragments seen at least %d times", len(candidates), *threshold)
}
