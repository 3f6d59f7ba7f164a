package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Key is the text a key produces. In YAML it is either a string or an
// ASCII code, so control keys can be written as numbers (2 for Ctrl+B).
type Key string

// UnmarshalYAML accepts a string scalar or an integer in [0, 127].
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("config: line %d: key must be a scalar", node.Line)
	}

	if node.Tag == "!!int" {
		code, err := strconv.ParseInt(node.Value, 0, 32)
		if err != nil || code < 0 || code > 127 {
			return fmt.Errorf("config: line %d: key code %s is not ASCII", node.Line, node.Value)
		}
		*k = Key(rune(code))
		return nil
	}

	*k = Key(node.Value)
	return nil
}
