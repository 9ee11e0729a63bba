package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rileyhilliard/statusbox/internal/errors"
	"gopkg.in/yaml.v3"
)

const fileHeader = `# statusbox configuration
# Run 'statusbox demo' to try the widgets with these settings.

`

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}
	return []byte(buf.String()), nil
}

// Write saves cfg to path with a header comment, creating parent
// directories as needed.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory: "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, append([]byte(fileHeader), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check directory permissions")
	}
	return nil
}

// Set updates a single dotted key (e.g. "paging.fail_every") in the file at
// path, keeping the rest of the document and its comments intact. Missing
// sections and keys are appended.
func Set(path, key, value string) error {
	if _, ok := knownKeys()[key]; !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown config key '%s'", key),
			"Run 'statusbox config' to see the available keys")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file: "+path,
			"Run 'statusbox init' to create one")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file: "+path,
			"Fix the YAML syntax")
	}
	if root.Kind == 0 {
		root = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Expected a mapping at the top of "+path,
			"Fix the YAML structure")
	}

	node := root.Content[0]
	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		child := findMapValue(node, part)
		if child == nil {
			child = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalar(part), child)
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	if existing := findMapValue(node, leaf); existing != nil {
		existing.Kind = yaml.ScalarNode
		existing.Tag = ""
		existing.Value = value
		existing.Style = scalarStyle(value)
		existing.Content = nil
	} else {
		v := scalar(value)
		v.Tag = ""
		v.Style = scalarStyle(value)
		node.Content = append(node.Content, scalar(leaf), v)
	}

	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}
	if err := enc.Close(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Failed to encode config", "")
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check file permissions")
	}
	return nil
}

// Keys returns every settable dotted key.
func Keys() []string {
	return []string{
		"version",
		"hints.empty", "hints.error", "hints.no_more",
		"hints.load_more_error", "hints.prepend_error", "hints.retry",
		"box.block_input",
		"demo.load_delay", "demo.item_count",
		"paging.page_size", "paging.max_pages", "paging.delay",
		"paging.fail_every", "paging.prefetch_distance", "paging.placeholders",
	}
}

func knownKeys() map[string]struct{} {
	m := make(map[string]struct{})
	for _, k := range Keys() {
		m[k] = struct{}{}
	}
	return m
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// scalarStyle quotes values that YAML would otherwise read as another type
// only when they are not meant as one.
func scalarStyle(value string) yaml.Style {
	switch value {
	case "", "~", "null", "Null", "NULL":
		return yaml.DoubleQuotedStyle
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return 0
	}
	if _, err := strconv.ParseBool(value); err == nil {
		return 0
	}
	if strings.ContainsAny(value, ":#{}[]&*!|>'\"%@`") || strings.HasPrefix(value, "-") || strings.TrimSpace(value) != value {
		return yaml.DoubleQuotedStyle
	}
	return 0
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; k.Kind == yaml.ScalarNode && k.Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Values returns the value of every key in Keys, formatted as it would be
// written to the file.
func Values(cfg *Config) (map[string]string, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Failed to read back config", "")
	}

	out := make(map[string]string, len(Keys()))
	for _, key := range Keys() {
		var node interface{} = doc
		for _, part := range strings.Split(key, ".") {
			m, ok := node.(map[string]interface{})
			if !ok {
				node = nil
				break
			}
			node = m[part]
		}
		if node != nil {
			out[key] = fmt.Sprint(node)
		}
	}
	return out, nil
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
