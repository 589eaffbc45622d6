package fonts

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/velvetfox/riceup/internal/userctx"
)

//go:embed assets
var fontFS embed.FS

// Installer copies the bundled font set into the target user's font
// directory and refreshes the font cache.
type Installer struct {
	fs      afero.Fs
	logFunc func(string)

	// refreshCache is swapped in tests; the default shells out to fc-cache.
	refreshCache func(ctx context.Context) error
}

func NewInstaller(filesystem afero.Fs, logFunc func(string)) *Installer {
	in := &Installer{fs: filesystem, logFunc: logFunc}
	in.refreshCache = in.fcCache
	return in
}

// Install writes every bundled font into usr.FontDir, re-owning each file to
// the target user, then rebuilds the cache. Existing files are overwritten.
func (in *Installer) Install(ctx context.Context, usr *userctx.Context) error {
	if err := in.fs.MkdirAll(usr.FontDir, 0755); err != nil {
		return fmt.Errorf("failed to create font directory: %w", err)
	}
	if err := in.fs.Chown(usr.FontDir, usr.UID, usr.GID); err != nil {
		in.log(fmt.Sprintf("Warning: could not chown %s: %v", usr.FontDir, err))
	}

	entries, err := fs.ReadDir(fontFS, "assets")
	if err != nil {
		return fmt.Errorf("failed to read bundled fonts: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fontFS.ReadFile(filepath.Join("assets", entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read bundled font %s: %w", entry.Name(), err)
		}

		dst := filepath.Join(usr.FontDir, entry.Name())
		if err := afero.WriteFile(in.fs, dst, data, 0644); err != nil {
			return fmt.Errorf("failed to install font %s: %w", entry.Name(), err)
		}
		if err := in.fs.Chown(dst, usr.UID, usr.GID); err != nil {
			in.log(fmt.Sprintf("Warning: could not chown %s: %v", dst, err))
		}
	}
	in.log(fmt.Sprintf("✓ Installed %d font files to %s", len(entries), usr.FontDir))

	if err := in.refreshCache(ctx); err != nil {
		return fmt.Errorf("font cache refresh failed: %w", err)
	}
	in.log("✓ Font cache refreshed")
	return nil
}

func (in *Installer) fcCache(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "fc-cache", "-f")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("fc-cache -f: %w\n%s", err, string(output))
	}
	return nil
}

func (in *Installer) log(message string) {
	if in.logFunc != nil {
		in.logFunc(message)
	}
}
