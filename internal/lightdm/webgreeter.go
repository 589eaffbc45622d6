package lightdm

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// WebGreeterConfPath is web-greeter's own configuration file.
const WebGreeterConfPath = "/etc/lightdm/web-greeter.yml"

// SetTheme points web-greeter at the given theme. The file is parsed and
// re-emitted as YAML nodes, so comments and unrelated keys survive; the theme
// key is replaced when present and inserted when not.
func (c *Configurator) SetTheme(theme string) error {
	return c.setThemeAt(WebGreeterConfPath, theme)
}

func (c *Configurator) setThemeAt(path, theme string) error {
	var source []byte
	if data, err := afero.ReadFile(c.fs, path); err == nil {
		source = data
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Empty or comment-only files decode to a zero node.
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("unexpected structure in %s: top level is not a mapping", path)
	}

	found := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "theme" {
			root.Content[i+1].SetString(theme)
			found = true
		}
	}
	if !found {
		var key, value yaml.Node
		key.SetString("theme")
		value.SetString(theme)
		root.Content = append(root.Content, &key, &value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(c.fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.log(fmt.Sprintf("✓ Set greeter theme to %s", theme))
	return nil
}
