package config

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the project file read by the surfaces CLI.
type Config struct {
	Version          string             `yaml:"version" validate:"required,semver"`
	Attribute        string             `yaml:"attribute,omitempty" validate:"omitempty,attribute_name"`
	RemoveAttribute  bool               `yaml:"remove_attribute,omitempty"`
	PreserveExisting bool               `yaml:"preserve_existing"`
	ReplaceDefaults  bool               `yaml:"replace_defaults,omitempty"`
	CacheSize        int                `yaml:"cache_size,omitempty" validate:"min=0,max=65536"`
	Exclude          []string           `yaml:"exclude,omitempty" validate:"omitempty,dive,class_token"`
	Mappings         map[string]Mapping `yaml:"mappings,omitempty" validate:"omitempty,dive,keys,semantic_key,endkeys"`

	// PreserveExistingSet records whether the file spelled out preserve_existing.
	PreserveExistingSet bool `yaml:"-"`
}

// Mapping is one table entry. In YAML it is either a bare class string or a
// {classes, exempt} object.
type Mapping struct {
	Classes string `yaml:"classes" validate:"required"`
	Exempt  bool   `yaml:"exempt,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Version:          "1.0",
		PreserveExisting: true,
	}
}

// UnmarshalYAML applies defaults for keys the document leaves out.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type rawConfig Config
	var temp rawConfig
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*c = Config(temp)
	c.PreserveExistingSet = hasYAMLKey(value, "preserve_existing")
	if !c.PreserveExistingSet {
		c.PreserveExisting = true
	}
	return nil
}

// UnmarshalYAML accepts both the short and the long entry form.
func (m *Mapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var classes string
		if err := value.Decode(&classes); err != nil {
			return err
		}
		*m = Mapping{Classes: classes}
		return nil
	}

	type rawMapping Mapping
	var temp rawMapping
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*m = Mapping(temp)
	return nil
}

// MarshalYAML writes entries back in the short form unless they are exempt.
func (m Mapping) MarshalYAML() (interface{}, error) {
	if !m.Exempt {
		return m.Classes, nil
	}
	type rawMapping Mapping
	return rawMapping(m), nil
}

func hasYAMLKey(node *yaml.Node, key string) bool {
	if node == nil || node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i < len(node.Content); i += 2 {
		k := node.Content[i]
		if strings.EqualFold(k.Value, key) {
			return true
		}
	}
	return false
}
