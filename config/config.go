package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bsthun/gut"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "TRANSFER_CONFIG_PATH"

const DefaultPath = "config.yml"

type Config struct {
	Dictionary string `yaml:"dictionary" validate:"required"`
	Vocabulary string `yaml:"vocabulary" validate:"required"`
	Duplicates string `yaml:"duplicates" validate:"oneof=overwrite reject"`
	Listen     string `yaml:"listen" validate:"required"`
	Journal    string `yaml:"journal"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Dictionary: "words.txt",
		Vocabulary: "jieba_dict.txt",
		Duplicates: "overwrite",
		Listen:     ":8000",
	}
}

// Load reads a YAML config file over the defaults and validates it.
// A missing file is not an error when allowMissing is set.
func Load(path string, allowMissing bool) (*Config, error) {
	config := Default()

	yml, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(yml, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := gut.Validate(config); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	if err := config.check(); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) check() error {
	switch {
	case c.Dictionary == "":
		return errors.New("dictionary path is empty")
	case c.Vocabulary == "":
		return errors.New("vocabulary path is empty")
	case c.Listen == "":
		return errors.New("listen address is empty")
	case c.Duplicates != "overwrite" && c.Duplicates != "reject":
		return fmt.Errorf("duplicates must be overwrite or reject, got %q", c.Duplicates)
	}
	return nil
}

func Init() *Config {
	// * resolve path
	path := os.Getenv(EnvPath)
	allowMissing := path == ""
	if path == "" {
		path = DefaultPath
	}

	// * read, parse and validate
	config, err := Load(path, allowMissing)
	if err != nil {
		gut.Fatal("Unable to load configuration", err)
	}

	return config
}
