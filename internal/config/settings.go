// Package config assembles the runtime settings for a structure scan.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/temirov/structree/internal/utils"
)

const (
	// DefaultOutputFileName is the fixed name of the generated structure file.
	DefaultOutputFileName = "project_structure.txt"

	// ApplicationBinaryName is the name of the installed structree executable.
	ApplicationBinaryName = "structree"

	// DefaultTokenizerModelName selects the tokenizer used for token estimates.
	DefaultTokenizerModelName = "gpt-4o"

	outputFileSettingKey     = "output_file"
	ignoreNamesSettingKey    = "ignore"
	tokenizerModelSettingKey = "tokenizer_model"

	errorDecodeSettingsFormat = "decoding settings: %w"
)

// defaultIgnoreNames lists the entry names excluded from every scan.
// The tool's own binary and output file are excluded so a scan never lists its own artifacts.
var defaultIgnoreNames = []string{
	".git",
	".vscode",
	".idea",
	"__pycache__",
	"node_modules",
	"build",
	"dist",
	"venv",
	".DS_Store",
	".env",
	ApplicationBinaryName,
	DefaultOutputFileName,
}

// Settings holds the configuration values consumed by one scan run.
type Settings struct {
	OutputFileName string   `mapstructure:"output_file"`
	IgnoreNames    []string `mapstructure:"ignore"`
	TokenizerModel string   `mapstructure:"tokenizer_model"`
}

// LoadSettings builds the scan settings from the built-in defaults.
// The ignore list is not externally configurable; viper carries the defaults
// and performs the mapstructure decoding into Settings.
func LoadSettings() (Settings, error) {
	viperInstance := viper.New()
	viperInstance.SetDefault(outputFileSettingKey, DefaultOutputFileName)
	viperInstance.SetDefault(ignoreNamesSettingKey, defaultIgnoreNames)
	viperInstance.SetDefault(tokenizerModelSettingKey, DefaultTokenizerModelName)

	var settings Settings
	if decodeError := viperInstance.Unmarshal(&settings); decodeError != nil {
		return Settings{}, fmt.Errorf(errorDecodeSettingsFormat, decodeError)
	}
	settings.IgnoreNames = utils.DeduplicateNames(settings.IgnoreNames)
	return settings, nil
}
