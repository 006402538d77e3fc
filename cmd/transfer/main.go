package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lwch/logging"
	"github.com/teatak/transfer/bootstrap"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/repl"
	"github.com/teatak/transfer/transfer"
	"go.uber.org/fx"
)

func main() {
	dictPath := flag.String("dict", "", "Path to dictionary file (overrides config)")
	vocabPath := flag.String("vocab", "", "Path to write the vocabulary file (overrides config)")
	flag.Parse()
	args := flag.Args()

	// * main fx application
	fx.New(
		bootstrap.Option(),
		bootstrap.Module,
		fx.NopLogger,
		fx.Decorate(
			func(cfg *config.Config) *config.Config {
				if *dictPath != "" {
					cfg.Dictionary = *dictPath
				}
				if *vocabPath != "" {
					cfg.Vocabulary = *vocabPath
				}
				return cfg
			},
		),
		fx.Invoke(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, tr *transfer.Translator, rec transfer.Recorder) {
				invoke(lifecycle, shutdowner, tr, rec, args)
			},
		),
	).Run()
}

func invoke(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, tr *transfer.Translator, rec transfer.Recorder, args []string) {
	ctx, cancel := context.WithCancel(context.Background())

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer shutdowner.Shutdown()

				// one-shot mode when text is given on the command line
				if len(args) > 0 {
					fmt.Println(repl.Translate(tr, rec, strings.Join(args, " ")))
					return
				}

				if err := repl.Run(ctx, os.Stdin, os.Stdout, tr, rec); err != nil && !errors.Is(err, context.Canceled) {
					logging.Error("read input: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
