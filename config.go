package datatable

import (
	"fmt"

	fs "github.com/ungerik/go-fs"
	"gopkg.in/yaml.v3"
)

// Config is the declarative part of a table
// as loaded from a YAML file.
type Config struct {
	Title   string       `yaml:"title"`
	Columns ColumnSpecs  `yaml:"columns"`
	Options OptionsPatch `yaml:"options"`
	// Data holds optional static rows,
	// each a mapping keyed by column name
	// or a sequence of positional values.
	Data []any `yaml:"data"`
}

// RowInputs returns the Data rows as row inputs.
func (c *Config) RowInputs() []RowInput {
	return RowInputs(c.Data...)
}

// ColumnSpecs is a list of column specs that
// unmarshals YAML sequence items either from a bare
// column name string or from a column object.
type ColumnSpecs []ColumnSpec

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ColumnSpecs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("columns must be a YAML sequence, got line %d column %d", node.Line, node.Column)
	}
	specs := make(ColumnSpecs, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			specs = append(specs, ColumnName(item.Value))
		case yaml.MappingNode:
			var def ColumnDef
			if err := item.Decode(&def); err != nil {
				return err
			}
			specs = append(specs, def)
		default:
			return fmt.Errorf("column at line %d must be a name or an object", item.Line)
		}
	}
	*s = specs
	return nil
}

// ParseConfig parses a YAML table config.
func ParseConfig(data []byte) (*Config, error) {
	config := new(Config)
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("can't parse table config: %w", err)
	}
	return config, nil
}

// LoadConfig reads and parses a YAML table config file.
func LoadConfig(file fs.FileReader) (*Config, error) {
	data, err := file.ReadAll()
	if err != nil {
		return nil, err
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%w from %s", err, file.Name())
	}
	return config, nil
}
