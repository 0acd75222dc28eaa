package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString(ConfigDefaultStrategy), "astar")
	is.Equal(c.GetString(ConfigDictionaryEncoding), "utf8")
	is.Equal(c.GetFloat64(ConfigAdjacencyCacheFraction), 0.0)
	is.True(c.GetInt(ConfigBatchThreads) > 0)
	is.True(!c.GetBool(ConfigDebug))
}

func TestLoadFlagsAndArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--default-strategy", "ucs", "--debug", "ladder", "cat", "dog", "-strategy", "all"}))
	is.Equal(c.GetString(ConfigDefaultStrategy), "ucs")
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args, []string{"ladder", "cat", "dog", "-strategy", "all"})
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDLADDER_NATS_CHANNEL", "ladder.test")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString(ConfigNatsChannel), "ladder.test")
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("default-dictionary: small.txt\nbatch-threads: 3\n"), 0o644)
	is.NoErr(err)
	c := &Config{}
	is.NoErr(c.Load([]string{"--data-path", dir}))
	is.Equal(c.GetString(ConfigDefaultDictionary), "small.txt")
	is.Equal(c.GetInt(ConfigBatchThreads), 3)
	is.Equal(c.DictionaryPath("small.txt"), filepath.Join(dir, "small.txt"))
}

func TestFindBasePath(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	nested := filepath.Join(dir, "a", "b")
	is.NoErr(os.MkdirAll(nested, 0o755))
	is.Equal(FindBasePath(nested), dir)
}

func TestSanitizedSettings(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--nats-url", "nats://user:pw@localhost:4222"}))
	s := c.SanitizedSettings()
	is.Equal(s[ConfigNatsURL], "****")
}
