package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/velvetfox/riceup/internal/userctx"
)

// ThemeBaseDir is where web-greeter looks up its themes.
const ThemeBaseDir = "/usr/share/web-greeter/themes"

// configTrees maps each deployed subsystem to its file tree, relative to the
// subsystem directory under ~/.config.
var configTrees = map[string]map[string]string{
	"i3": {
		"config":          I3Config,
		"scripts/lock.sh": I3LockScript,
	},
	"polybar": {
		"config.ini": PolybarConfig,
		"launch.sh":  PolybarLaunchScript,
	},
	"rofi": {
		"config.rasi":         RofiConfig,
		"themes/gruvbox.rasi": RofiGruvboxTheme,
	},
}

type DeploymentResult struct {
	Subsystem string
	Path      string
	Deployed  bool
	Err       error
}

// Deployer copies the bundled configuration trees into place and keeps
// ownership with the target user.
type Deployer struct {
	fs      afero.Fs
	logFunc func(string)
}

func NewDeployer(filesystem afero.Fs, logFunc func(string)) *Deployer {
	return &Deployer{fs: filesystem, logFunc: logFunc}
}

// Cleanup removes previously deployed configuration trees and the greeter
// theme directory. Absent targets are not an error; a fresh system and a
// re-run end up in the same place.
func (d *Deployer) Cleanup(usr *userctx.Context, theme string) error {
	targets := []string{
		filepath.Join(usr.ConfigDir, "i3"),
		filepath.Join(usr.ConfigDir, "polybar"),
		filepath.Join(usr.ConfigDir, "rofi"),
		filepath.Join(ThemeBaseDir, theme),
	}
	for _, target := range targets {
		if err := d.fs.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
		d.log(fmt.Sprintf("Cleaned %s", target))
	}
	return nil
}

// DeployConfigs writes the i3, polybar, and rofi trees under the user's
// config directory, fixes ownership, and marks shell scripts executable.
func (d *Deployer) DeployConfigs(ctx context.Context, usr *userctx.Context) ([]DeploymentResult, error) {
	var results []DeploymentResult

	for subsystem, tree := range configTrees {
		result := DeploymentResult{
			Subsystem: subsystem,
			Path:      filepath.Join(usr.ConfigDir, subsystem),
		}

		if err := d.deployTree(result.Path, tree, usr); err != nil {
			result.Err = err
			results = append(results, result)
			return results, fmt.Errorf("failed to deploy %s config: %w", subsystem, err)
		}

		result.Deployed = true
		results = append(results, result)
		d.log(fmt.Sprintf("✓ Deployed %s configuration", subsystem))
	}

	return results, nil
}

func (d *Deployer) deployTree(base string, tree map[string]string, usr *userctx.Context) error {
	for rel, content := range tree {
		dst := filepath.Join(base, rel)
		if err := d.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(dst), err)
		}

		mode := os.FileMode(0644)
		if strings.HasSuffix(rel, ".sh") {
			mode = 0755
		}
		if err := afero.WriteFile(d.fs, dst, []byte(content), mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
		// WriteFile does not touch the mode of pre-existing files.
		if err := d.fs.Chmod(dst, mode); err != nil {
			return fmt.Errorf("failed to chmod %s: %w", dst, err)
		}
	}
	return d.chownTree(base, usr)
}

// InstallTheme writes the greeter theme into the web-greeter theme
// directory. The theme is system-owned, no chown is performed.
func (d *Deployer) InstallTheme(theme string) error {
	dir := filepath.Join(ThemeBaseDir, theme)

	files := map[string]string{
		"index.html":  GreeterThemeHTML,
		"gruvbox.css": GreeterThemeCSS,
		"gruvbox.js":  GreeterThemeJS,
	}
	for name, content := range files {
		dst := filepath.Join(dir, name)
		if err := d.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create theme directory: %w", err)
		}
		if err := afero.WriteFile(d.fs, dst, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dst, err)
		}
	}

	d.log(fmt.Sprintf("✓ Installed greeter theme %s", theme))
	return nil
}

// FinalizePermissions re-asserts ownership of every deployed user file and
// re-marks scripts executable. Safety net for anything step 5 touched while
// running as root.
func (d *Deployer) FinalizePermissions(usr *userctx.Context) error {
	roots := []string{
		filepath.Join(usr.ConfigDir, "i3"),
		filepath.Join(usr.ConfigDir, "polybar"),
		filepath.Join(usr.ConfigDir, "rofi"),
		usr.FontDir,
	}

	for _, root := range roots {
		if _, err := d.fs.Stat(root); err != nil {
			continue
		}
		err := afero.Walk(d.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if err := d.fs.Chown(path, usr.UID, usr.GID); err != nil {
				return fmt.Errorf("failed to chown %s: %w", path, err)
			}
			if !info.IsDir() && strings.HasSuffix(path, ".sh") {
				if err := d.fs.Chmod(path, 0755); err != nil {
					return fmt.Errorf("failed to chmod %s: %w", path, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	d.log("✓ Ownership and permissions finalized")
	return nil
}

func (d *Deployer) chownTree(root string, usr *userctx.Context) error {
	return afero.Walk(d.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		return d.fs.Chown(path, usr.UID, usr.GID)
	})
}

func (d *Deployer) log(message string) {
	if d.logFunc != nil {
		d.logFunc(message)
	}
}
