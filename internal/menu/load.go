package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk menu definition: a top-level list of items.
type File struct {
	Items []Node[string] `yaml:"items" toml:"items"`
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) menu definition. Leaves
// without a value select their own text.
func Load(path string) ([]Node[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a menu definition in the format named by ext.
func Parse(data []byte, ext string) ([]Node[string], error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode yaml menu: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decode toml menu: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := normalize(f.Items, "items"); err != nil {
		return nil, err
	}
	return f.Items, nil
}

func normalize(nodes []Node[string], path string) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%s: %w", path, ErrEmptyMenu)
	}
	for i := range nodes {
		node := &nodes[i]
		at := fmt.Sprintf("%s[%d]", path, i)
		node.Text = strings.TrimSpace(node.Text)
		if node.Text == "" {
			return fmt.Errorf("%s: %w", at, ErrBlankLabel)
		}
		if node.IsBranch() {
			if err := normalize(node.Items, at+".items"); err != nil {
				return err
			}
			continue
		}
		if node.Value == "" {
			node.Value = node.Text
		}
	}
	return nil
}
