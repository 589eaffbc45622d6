package deps

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/velvetfox/riceup/internal/pkgmanager"
)

type DependencyStatus int

const (
	StatusMissing DependencyStatus = iota
	StatusInstalled
	StatusFailed
)

type Group int

const (
	GroupCore Group = iota
	GroupBuild
)

// Dependency describes one installable package. Command, when set, is the
// binary whose presence on PATH satisfies the dependency without touching the
// package database; otherwise the backend's package query decides.
type Dependency struct {
	Name        string
	Command     string
	Group       Group
	Description string
	Status      DependencyStatus
}

// Catalog is the flat dependency list, core desktop packages first, then the
// build prerequisites for compiling the greeter from source. Order inside a
// group carries no meaning.
func Catalog() []Dependency {
	return []Dependency{
		{Name: "i3", Command: "i3", Group: GroupCore, Description: "i3 tiling window manager"},
		{Name: "i3status", Command: "i3status", Group: GroupCore, Description: "i3 status line generator"},
		{Name: "i3lock", Command: "i3lock", Group: GroupCore, Description: "screen locker"},
		{Name: "rofi", Command: "rofi", Group: GroupCore, Description: "application launcher"},
		{Name: "polybar", Command: "polybar", Group: GroupCore, Description: "status bar"},
		{Name: "picom", Command: "picom", Group: GroupCore, Description: "compositor"},
		{Name: "dunst", Command: "dunst", Group: GroupCore, Description: "notification daemon"},
		{Name: "feh", Command: "feh", Group: GroupCore, Description: "wallpaper setter"},
		{Name: "lightdm", Group: GroupCore, Description: "display manager"},
		{Name: "fontconfig", Command: "fc-cache", Group: GroupCore, Description: "font cache tooling"},
		{Name: "git", Command: "git", Group: GroupBuild, Description: "source checkout"},
		{Name: "make", Command: "make", Group: GroupBuild, Description: "greeter build driver"},
		{Name: "pkg-config", Command: "pkg-config", Group: GroupBuild, Description: "build configuration helper"},
		{Name: "python3", Command: "python3", Group: GroupBuild, Description: "greeter runtime"},
		{Name: "npm", Command: "npm", Group: GroupBuild, Description: "greeter frontend build"},
	}
}

// Installer resolves and installs the dependency catalog through a detected
// package-manager backend.
type Installer struct {
	mgr     pkgmanager.Manager
	logFunc func(string)
}

func NewInstaller(mgr pkgmanager.Manager, logFunc func(string)) *Installer {
	return &Installer{mgr: mgr, logFunc: logFunc}
}

// EnsureAll walks the catalog and installs whatever is missing. Individual
// failures are logged and skipped; a desktop with one optional package
// missing is still a desktop. The returned slice carries per-dependency
// outcomes for reporting.
func (in *Installer) EnsureAll(ctx context.Context, catalog []Dependency) []Dependency {
	if err := in.mgr.Refresh(ctx); err != nil {
		in.log(fmt.Sprintf("Warning: package list refresh failed, installing against stale metadata: %v", err))
	}

	results := make([]Dependency, 0, len(catalog))
	for _, dep := range catalog {
		if in.satisfied(ctx, dep) {
			dep.Status = StatusInstalled
			in.log(fmt.Sprintf("✓ %s already installed", dep.Name))
			results = append(results, dep)
			continue
		}

		if err := in.mgr.Install(ctx, dep.Name); err != nil {
			dep.Status = StatusFailed
			in.log(fmt.Sprintf("⚠ %s failed to install: %v", dep.Name, err))
		} else {
			dep.Status = StatusInstalled
			in.log(fmt.Sprintf("✓ Installed %s", dep.Name))
		}
		results = append(results, dep)
	}
	return results
}

func (in *Installer) satisfied(ctx context.Context, dep Dependency) bool {
	if dep.Command != "" && commandExists(dep.Command) {
		return true
	}
	return in.mgr.IsInstalled(ctx, dep.Name)
}

func (in *Installer) log(message string) {
	if in.logFunc != nil {
		in.logFunc(message)
	}
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
