package lightdm

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activeThemeLines returns non-comment lines that set a theme key.
func activeThemeLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "theme:") {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func TestSetThemeCreatesMissingFile(t *testing.T) {
	c, fs := newTestConfigurator()

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))

	data, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"theme: gruvbox"}, activeThemeLines(string(data)))
}

func TestSetThemeOnCommentedOutKey(t *testing.T) {
	c, fs := newTestConfigurator()
	require.NoError(t, afero.WriteFile(fs, "/etc/lightdm/web-greeter.yml",
		[]byte("# theme: old\n"), 0644))

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))

	data, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"theme: gruvbox"}, activeThemeLines(string(data)),
		"exactly one active theme line expected")
}

func TestSetThemeReplacesExistingKey(t *testing.T) {
	c, fs := newTestConfigurator()
	require.NoError(t, afero.WriteFile(fs, "/etc/lightdm/web-greeter.yml",
		[]byte("theme: antergos\ndebug_mode: false\n"), 0644))

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))

	data, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, []string{"theme: gruvbox"}, activeThemeLines(content))
	assert.NotContains(t, content, "antergos")
	assert.Contains(t, content, "debug_mode: false")
}

func TestSetThemePreservesUnrelatedKeysAndComments(t *testing.T) {
	c, fs := newTestConfigurator()
	existing := "# web-greeter configuration\nbranding:\n  logo: /usr/share/pixmaps/logo.png\ntheme: old\n"
	require.NoError(t, afero.WriteFile(fs, "/etc/lightdm/web-greeter.yml", []byte(existing), 0644))

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))

	data, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "# web-greeter configuration")
	assert.Contains(t, content, "branding:")
	assert.Contains(t, content, "logo: /usr/share/pixmaps/logo.png")
	assert.Equal(t, []string{"theme: gruvbox"}, activeThemeLines(content))
}

func TestSetThemeIsIdempotent(t *testing.T) {
	c, fs := newTestConfigurator()

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))
	first, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)

	require.NoError(t, c.setThemeAt("/etc/lightdm/web-greeter.yml", "gruvbox"))
	second, err := afero.ReadFile(fs, "/etc/lightdm/web-greeter.yml")
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
