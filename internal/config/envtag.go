package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// envTag is the site generator's YAML tag for values read from the environment.
const envTag = "!ENV"

// envString is a string scalar that also accepts `!ENV VAR` and
// `!ENV [VAR, OTHER_VAR, default]`. The first variable that is set wins;
// otherwise the last list item is used, or "" for a single variable.
type envString string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *envString) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() != envTag {
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*s = envString(v)
		return nil
	}

	v, err := resolveEnvTag(node)
	if err != nil {
		return err
	}
	*s = envString(v)
	return nil
}

func resolveEnvTag(node *yaml.Node) (string, error) {
	var items []*yaml.Node
	switch node.Kind {
	case yaml.ScalarNode:
		items = []*yaml.Node{node}
	case yaml.SequenceNode:
		items = node.Content
	default:
		return "", fmt.Errorf("line %d: %s expects a variable name or a list", node.Line, envTag)
	}
	for _, item := range items {
		if item.Kind != yaml.ScalarNode {
			return "", fmt.Errorf("line %d: %s list items must be scalars", item.Line, envTag)
		}
	}

	var fallback string
	if len(items) > 1 {
		last := items[len(items)-1]
		if last.ShortTag() != "!!null" {
			fallback = last.Value
		}
		items = items[:len(items)-1]
	}

	for _, item := range items {
		if v, ok := os.LookupEnv(item.Value); ok {
			return v, nil
		}
	}
	return fallback, nil
}
