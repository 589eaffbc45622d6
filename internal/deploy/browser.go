package deploy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/velvetfox/riceup/internal/userctx"
)

// DeployBrowserCustomization drops the gruvbox userChrome/userContent styles
// into the user's Firefox profile. A machine without Firefox, or without a
// default profile, is a logged skip, not a failure.
func (d *Deployer) DeployBrowserCustomization(usr *userctx.Context) error {
	profile, ok := d.findFirefoxProfile(usr)
	if !ok {
		d.log("No Firefox profile found, skipping browser customization")
		return nil
	}

	chromeDir := filepath.Join(profile, "chrome")
	if err := d.fs.MkdirAll(chromeDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", chromeDir, err)
	}

	files := map[string]string{
		"userChrome.css":  FirefoxUserChrome,
		"userContent.css": FirefoxUserContent,
	}
	for name, content := range files {
		dst := filepath.Join(chromeDir, name)
		if err := afero.WriteFile(d.fs, dst, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}
	if err := d.chownTree(chromeDir, usr); err != nil {
		return err
	}

	d.log(fmt.Sprintf("✓ Browser customization installed to %s", chromeDir))
	return nil
}

// findFirefoxProfile returns the user's default-release profile directory.
// Preference order matches what Firefox itself creates: *.default-release,
// then *.default.
func (d *Deployer) findFirefoxProfile(usr *userctx.Context) (string, bool) {
	base := filepath.Join(usr.Home, ".mozilla", "firefox")
	entries, err := afero.ReadDir(d.fs, base)
	if err != nil {
		return "", false
	}

	for _, suffix := range []string{".default-release", ".default"} {
		for _, entry := range entries {
			if entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
				return filepath.Join(base, entry.Name()), true
			}
		}
	}
	return "", false
}
