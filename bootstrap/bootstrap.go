package bootstrap

import (
	"github.com/lwch/logging"
	"github.com/teatak/transfer/config"
	"github.com/teatak/transfer/dictionary"
	"github.com/teatak/transfer/segmenter"
	"github.com/teatak/transfer/transfer"
	"github.com/teatak/transfer/vocabulary"
)

// Build loads the dictionary, regenerates the vocabulary file from it and
// indexes that file, so the segmenter always sees the current phrases.
// Any error here is fatal for the caller.
func Build(cfg *config.Config) (*transfer.Translator, error) {
	dict, err := dictionary.Load(cfg.Dictionary, dictionary.WithPolicy(dictionary.Policy(cfg.Duplicates)))
	if err != nil {
		return nil, err
	}
	logging.Info("loaded dictionary %s: %d phrases", cfg.Dictionary, dict.Len())

	if err := vocabulary.Export(dict, cfg.Vocabulary); err != nil {
		return nil, err
	}
	logging.Info("exported vocabulary to %s", cfg.Vocabulary)

	seg := segmenter.NewLongestMatch()
	if err := seg.LoadVocabulary(cfg.Vocabulary); err != nil {
		return nil, err
	}
	logging.Info("segmenter ready: %d phrases indexed", seg.Len())

	return transfer.New(dict, seg), nil
}
