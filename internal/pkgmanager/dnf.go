package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
)

type DNFManager struct {
	logFunc func(string)
}

func NewDNFManager(logFunc func(string)) *DNFManager {
	return &DNFManager{logFunc: logFunc}
}

func (d *DNFManager) Name() string { return "dnf" }

func (d *DNFManager) Refresh(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "dnf", "makecache", "--refresh", "-y")
	if output, err := cmd.CombinedOutput(); err != nil {
		d.log(fmt.Sprintf("dnf makecache failed: %s", string(output)))
		return fmt.Errorf("failed to refresh dnf metadata: %w", err)
	}
	return nil
}

func (d *DNFManager) IsInstalled(ctx context.Context, pkg string) bool {
	cmd := exec.CommandContext(ctx, "rpm", "-q", pkg)
	return cmd.Run() == nil
}

func (d *DNFManager) Install(ctx context.Context, pkg string) error {
	d.log(fmt.Sprintf("Installing %s via dnf", pkg))

	cmd := exec.CommandContext(ctx, "dnf", "install", "-y", pkg)
	if output, err := cmd.CombinedOutput(); err != nil {
		d.log(fmt.Sprintf("dnf installation of %s failed: %s", pkg, string(output)))
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

func (d *DNFManager) log(message string) {
	if d.logFunc != nil {
		d.logFunc(message)
	}
}
