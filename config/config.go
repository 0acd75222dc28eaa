package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	wglconfig "github.com/domino14/word-golib/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath                  = "data-path"
	ConfigDefaultDictionary         = "default-dictionary"
	ConfigDefaultLexicon            = "default-lexicon"
	ConfigDefaultLetterDistribution = "default-letter-distribution"
	ConfigDictionaryEncoding        = "dictionary-encoding"
	ConfigDefaultStrategy           = "default-strategy"
	ConfigAdjacencyCacheFraction    = "adjacency-cache-fraction"
	ConfigBatchThreads              = "batch-threads"
	ConfigNatsURL                   = "nats-url"
	ConfigNatsChannel               = "nats-channel"
	ConfigDebug                     = "debug"
	ConfigCPUProfile                = "cpu-profile"
	ConfigMemProfile                = "mem-profile"
)

type Config struct {
	viper.Viper
	// Args holds positional arguments left over after flag parsing.
	Args []string
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordladder", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	// Everything after the first argument belongs to the shell command.
	fs.SetInterspersed(false)
	fs.String(ConfigDataPath, "./data", "directory holding word lists and lexica")
	fs.String(ConfigDefaultDictionary, "words.txt", "word list to load, relative to the data path")
	fs.String(ConfigDefaultLexicon, "", "KWG lexicon to use instead of a word list (e.g. NWL23)")
	fs.String(ConfigDefaultLetterDistribution, "english", "letter distribution for KWG lookups")
	fs.String(ConfigDictionaryEncoding, "utf8", "word list encoding: utf8 or latin1")
	fs.String(ConfigDefaultStrategy, "astar", "default search strategy: ucs, greedy or astar")
	fs.Float64(ConfigAdjacencyCacheFraction, 0, "fraction of total memory for the neighbor cache; 0 disables it")
	fs.Int(ConfigBatchThreads, runtime.NumCPU(), "number of goroutines for batch runs")
	fs.String(ConfigNatsURL, "nats://localhost:4222", "NATS server URL")
	fs.String(ConfigNatsChannel, "wordladder.solve", "NATS subject the bot listens on")
	fs.Bool(ConfigDebug, false, "debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigMemProfile, "", "write a memory profile to this file")
	return fs
}

// Load reads flags from args, then the environment, then an optional
// config.yaml in the data path. Flags take precedence.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	fs := flagSet()
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.Args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("wordladder")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(c.GetString(ConfigDataPath))
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Debug().Msg("no config file found; using flags, env and defaults")
	}
	return nil
}

func DefaultConfig() Config {
	c := Config{}
	if err := c.Load(nil); err != nil {
		log.Err(err).Msg("error-loading-default-config")
	}
	// Tests run from package directories; the data folder lives at the root.
	c.AdjustRelativePaths(".")
	return c
}

// FindBasePath walks upward from path until it finds a directory that
// contains a data folder. It returns path unchanged if none is found.
func FindBasePath(path string) string {
	dir := path
	for {
		if fi, err := os.Stat(filepath.Join(dir, "data")); err == nil && fi.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return path
		}
		dir = parent
	}
}

func toAbsPath(basepath, path, logname string) string {
	if filepath.IsAbs(path) {
		return path
	}
	p := filepath.Join(basepath, path)
	log.Debug().Str(logname, p).Msg("new-path")
	return p
}

func (c *Config) AdjustRelativePaths(basepath string) {
	basepath, err := filepath.Abs(basepath)
	if err != nil {
		log.Err(err).Msg("cannot-resolve-base-path")
		return
	}
	basepath = FindBasePath(basepath)
	c.Set(ConfigDataPath, toAbsPath(basepath, c.GetString(ConfigDataPath), "data-path"))
}

// DictionaryPath returns the full path of a word list file. Absolute names
// are returned as-is.
func (c *Config) DictionaryPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.GetString(ConfigDataPath), name)
}

func (c *Config) WGLConfig() *wglconfig.Config {
	return &wglconfig.Config{DataPath: c.GetString(ConfigDataPath)}
}

// SanitizedSettings returns the settings for display. Nothing secret is
// stored here yet, but URLs may carry credentials.
func (c *Config) SanitizedSettings() map[string]any {
	settings := c.AllSettings()
	if u, ok := settings[ConfigNatsURL].(string); ok && strings.Contains(u, "@") {
		settings[ConfigNatsURL] = "****"
	}
	return settings
}
