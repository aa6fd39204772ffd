package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/picshift/internal/model"
)

// EnvPrefix prefixes environment overrides, e.g. PICSHIFT_FORMAT=png
const EnvPrefix = "PICSHIFT"

const (
	defaultFormat   = model.FormatICO
	defaultSizeSpec = "64"
)

// cliConfig is the merged result of flags, environment and config file
type cliConfig struct {
	Format   string `mapstructure:"format"`
	Sizes    string `mapstructure:"sizes"`
	Out      string `mapstructure:"out"`
	Open     bool   `mapstructure:"open"`
	LogLevel string `mapstructure:"log_level"`
	LogJSON  bool   `mapstructure:"log_json"`
}

// flag name -> viper key
var flagKeys = map[string]string{
	"format":    "format",
	"sizes":     "sizes",
	"out":       "out",
	"open":      "open",
	"log-level": "log_level",
	"log-json":  "log_json",
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("picshift-cli", pflag.ContinueOnError)
	fs.StringP("format", "f", string(defaultFormat), "target format: PNG, ICO, JPEG, TIFF or ICNS")
	fs.StringP("sizes", "s", defaultSizeSpec, "comma-separated square sizes, e.g. 16,32,64")
	fs.StringP("out", "o", "", "output directory (default: next to each input)")
	fs.Bool("open", false, "open the output folder after each conversion")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.Bool("log-json", false, "log in JSON")
	fs.StringP("config", "c", "", "optional YAML config file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: picshift-cli [flags] FILE...\n\nFlags:\n%s", fs.FlagUsages())
	}
	return fs
}

// loadConfig parses args and merges them over PICSHIFT_* variables and the config file.
// It returns the positional file arguments.
func loadConfig(fs *pflag.FlagSet, args []string) (*cliConfig, []string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg cliConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, fs.Args(), nil
}

// request builds the conversion request for one input file
func (c *cliConfig) request(input string, format model.ImageFormat) model.ConversionRequest {
	return model.ConversionRequest{
		InputPath: input,
		OutputDir: strings.TrimSpace(c.Out),
		Format:    format,
		SizeSpec:  c.Sizes,
	}
}
