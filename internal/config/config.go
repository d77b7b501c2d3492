package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/pcmwav/internal/audio"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Format   FormatConfig  `mapstructure:"format"`
	Convert  ConvertConfig `mapstructure:"convert"`
	LogLevel string        `mapstructure:"log_level"`
}

// FormatConfig describes the raw PCM produced by the upstream source.
type FormatConfig struct {
	SampleRate  int `mapstructure:"sample_rate"`
	Channels    int `mapstructure:"channels"`
	SampleWidth int `mapstructure:"sample_width"`
}

type ConvertConfig struct {
	Dir         string   `mapstructure:"dir"`
	Sources     []string `mapstructure:"sources"`
	Pattern     string   `mapstructure:"pattern"`
	Suffix      string   `mapstructure:"suffix"`
	Concurrency int      `mapstructure:"concurrency"`
	SkipMissing bool     `mapstructure:"skip_missing"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// flagKeys maps registered flag names to their config keys.
var flagKeys = map[string]string{
	"sample-rate":  "format.sample_rate",
	"channels":     "format.channels",
	"sample-width": "format.sample_width",
	"dir":          "convert.dir",
	"pattern":      "convert.pattern",
	"suffix":       "convert.suffix",
	"concurrency":  "convert.concurrency",
	"skip-missing": "convert.skip_missing",
	"log-level":    "log_level",
}

func DefaultConfig() Config {
	return Config{
		Format: FormatConfig{
			SampleRate:  audio.DefaultSampleRate,
			Channels:    audio.DefaultChannels,
			SampleWidth: audio.DefaultSampleWidth,
		},
		Convert: ConvertConfig{
			Dir:         "exports",
			Sources:     nil,
			Pattern:     "*.wav",
			Suffix:      "_fixed",
			Concurrency: 1,
			SkipMissing: true,
		},
		LogLevel: "info",
	}
}

// AudioFormat returns the configured format as the writer's descriptor.
func (c FormatConfig) AudioFormat() audio.Format {
	return audio.Format{
		SampleRate:  c.SampleRate,
		Channels:    c.Channels,
		SampleWidth: c.SampleWidth,
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("sample-rate", defaults.Format.SampleRate, "Sample rate of the raw PCM in Hz")
	fs.Int("channels", defaults.Format.Channels, "Channel count of the raw PCM")
	fs.Int("sample-width", defaults.Format.SampleWidth, "Bytes per sample of the raw PCM")
	fs.String("dir", defaults.Convert.Dir, "Directory holding the raw sources")
	fs.String("pattern", defaults.Convert.Pattern, "Glob used to find sources when none are listed")
	fs.String("suffix", defaults.Convert.Suffix, "Suffix inserted before the extension of each output file")
	fs.Int("concurrency", defaults.Convert.Concurrency, "Max files converted in parallel")
	fs.Bool("skip-missing", defaults.Convert.SkipMissing, "Skip listed sources that do not exist instead of failing")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("PCMWAV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("pcmwav")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("format.sample_rate", c.Format.SampleRate)
	v.SetDefault("format.channels", c.Format.Channels)
	v.SetDefault("format.sample_width", c.Format.SampleWidth)
	v.SetDefault("convert.dir", c.Convert.Dir)
	v.SetDefault("convert.sources", c.Convert.Sources)
	v.SetDefault("convert.pattern", c.Convert.Pattern)
	v.SetDefault("convert.suffix", c.Convert.Suffix)
	v.SetDefault("convert.concurrency", c.Convert.Concurrency)
	v.SetDefault("convert.skip_missing", c.Convert.SkipMissing)
	v.SetDefault("log_level", c.LogLevel)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
