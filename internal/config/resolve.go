package config

import (
	"os"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/surfaces/internal/classstack"
	"github.com/alexisbeaulieu97/surfaces/internal/mapper"
	"github.com/alexisbeaulieu97/surfaces/internal/mappings"
)

const (
	// DefaultFile is the project file looked up in the working directory.
	DefaultFile = "surfaces.yaml"
	// EnvConfig overrides the project file location.
	EnvConfig = "SURFACES_CONFIG"
)

// Locate picks the configuration file: the explicit path, then $SURFACES_CONFIG,
// then surfaces.yaml when it exists. An empty result means built-in defaults.
func Locate(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfig)); env != "" {
		return env
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load parses the located file, or returns Default when there is none.
func Load(explicit string) (*Config, string, error) {
	path := Locate(explicit)
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := ParseConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Entries returns the configured mappings as table entries, sorted by key.
func (c *Config) Entries() []mappings.Entry {
	entries := make([]mappings.Entry, 0, len(c.Mappings))
	for key, m := range c.Mappings {
		entries = append(entries, mappings.Entry{
			Key:     key,
			Classes: strings.Fields(m.Classes),
			Exempt:  m.Exempt,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Table builds the effective table: the built-in defaults extended by the
// configured mappings, or only the configured mappings with replace_defaults.
func (c *Config) Table() (*mappings.Table, error) {
	if c.ReplaceDefaults {
		return mappings.New(c.Entries())
	}
	if len(c.Mappings) == 0 {
		return mappings.Default(), nil
	}
	return mappings.Default().Extend(c.Entries())
}

// ProcessorOptions maps the file onto processor options.
func (c *Config) ProcessorOptions() mapper.Options {
	opts := mapper.DefaultOptions()
	if c.Attribute != "" {
		opts.Attribute = c.Attribute
	}
	opts.RemoveAttribute = c.RemoveAttribute
	opts.DiscardExisting = !c.PreserveExisting
	return opts
}

// ProcessorSettings returns construction options for the processor.
func (c *Config) ProcessorSettings() []mapper.Option {
	if c.CacheSize == 0 {
		return nil
	}
	return []mapper.Option{mapper.WithCacheSize(c.CacheSize)}
}

// Orderer returns the copy/export orderer, honouring a custom exclude list.
func (c *Config) Orderer() classstack.Orderer {
	orderer := classstack.DefaultOrderer()
	if len(c.Exclude) > 0 {
		orderer.Exclude = append([]string(nil), c.Exclude...)
	}
	return orderer
}
