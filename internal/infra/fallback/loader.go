package fallback

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/city-insights/internal/domain/dashboard"
)

// document accepts either a bare list or {insights: [...]}.
type document struct {
	Insights []dashboard.Insight `yaml:"insights"`
}

// Load reads the pre-seeded fallback insights. YAML and JSON files are both
// accepted. An empty path means no fallback set.
func Load(path string) ([]dashboard.Insight, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fallback file: %w", err)
	}
	return Parse(data)
}

// Parse decodes fallback insights from raw YAML or JSON.
func Parse(data []byte) ([]dashboard.Insight, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(trimmed, &node); err != nil {
		return nil, fmt.Errorf("parse fallback file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var insights []dashboard.Insight
		if err := root.Decode(&insights); err != nil {
			return nil, fmt.Errorf("decode fallback insights: %w", err)
		}
		return insights, nil
	case yaml.MappingNode:
		var doc document
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode fallback insights: %w", err)
		}
		return doc.Insights, nil
	default:
		return nil, fmt.Errorf("fallback file must hold a list of insights")
	}
}
