package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssfmt"
)

const envPrefix = "CSSFMT_"

var k = koanf.New(".")

// flagKeys maps flags onto the config keys they override. Flags not listed
// use their own name as the key.
var flagKeys = map[string]string{
	"toc":          "with-toc",
	"line-numbers": "toc.line-numbers",
	"toc-indent":   "toc.indent-sections",
	"indent":       "format.indent",
	"max-length":   "format.selectors.max-length",
	"hierarchy":    "format.selectors.hierarchy",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".cssfmt.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags, including inherited persistent flags. Flags left at their
	// default do not override keys already set by the file or env.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, any) {
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

// envKey maps an environment variable onto a config key. A double
// underscore separates sections:
//
//	CSSFMT_FORMAT__SELECTORS__MAX_LENGTH -> format.selectors.max-length
//	CSSFMT_WITH_TOC                      -> with-toc
func envKey(s string) string {
	parts := strings.Split(strings.TrimPrefix(s, envPrefix), "__")
	for i, p := range parts {
		parts[i] = strcase.ToKebab(strings.ToLower(p))
	}
	return strings.Join(parts, ".")
}

func envKeyValue(key, value string) (string, any) {
	key = envKey(key)
	if key == "keywords" {
		return key, strings.Split(value, ",")
	}
	return key, value
}

// buildFormatConfig decodes the library settings from koanf state over the
// library defaults.
func buildFormatConfig() (cssfmt.Config, error) {
	cfg := cssfmt.DefaultConfig()
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
