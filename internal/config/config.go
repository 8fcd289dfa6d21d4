// Package config loads the ztrtag configuration file.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	texttag "github.com/starfederation/texttag-go"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	DefaultCharset  = "ISO-8859-1"
	DefaultLogLevel = "info"
)

// Config is the on-disk configuration.
//
//	charset = "windows-1251"
//	log_level = "debug"
//
//	[names.keys]
//	Confirm = "Valider"
type Config struct {
	Charset  string `toml:"charset"`
	LogLevel string `toml:"log_level"`
	Names    Names  `toml:"names"`
}

// Names renames built-in symbols, old name to new name.
type Names struct {
	Tags  map[string]string `toml:"tags"`
	Texts map[string]string `toml:"texts"`
	Keys  map[string]string `toml:"keys"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Charset: DefaultCharset, LogLevel: DefaultLogLevel}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys the configuration does not define are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := cfg.Charmap(); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Charmap resolves the configured charset by IANA name. Only single-byte
// charsets can map literal bytes one to one.
func (c Config) Charmap() (*charmap.Charmap, error) {
	name := c.Charset
	if name == "" {
		name = DefaultCharset
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("charset %q is not a single-byte charset", name)
	}
	return cm, nil
}

// Codec builds the codec described by c.
func (c Config) Codec() (*texttag.Codec, error) {
	cm, err := c.Charmap()
	if err != nil {
		return nil, err
	}
	symbols, err := texttag.Rename(texttag.Renames{
		Tags:  c.Names.Tags,
		Texts: c.Names.Texts,
		Keys:  c.Names.Keys,
	})
	if err != nil {
		return nil, fmt.Errorf("names: %w", err)
	}
	return texttag.NewCodec(texttag.WithSymbols(symbols), texttag.WithCharmap(cm)), nil
}
