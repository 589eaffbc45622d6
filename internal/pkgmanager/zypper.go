package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
)

type ZypperManager struct {
	logFunc func(string)
}

func NewZypperManager(logFunc func(string)) *ZypperManager {
	return &ZypperManager{logFunc: logFunc}
}

func (z *ZypperManager) Name() string { return "zypper" }

func (z *ZypperManager) Refresh(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "zypper", "--non-interactive", "refresh")
	if output, err := cmd.CombinedOutput(); err != nil {
		z.log(fmt.Sprintf("zypper refresh failed: %s", string(output)))
		return fmt.Errorf("failed to refresh zypper repositories: %w", err)
	}
	return nil
}

func (z *ZypperManager) IsInstalled(ctx context.Context, pkg string) bool {
	cmd := exec.CommandContext(ctx, "rpm", "-q", pkg)
	return cmd.Run() == nil
}

func (z *ZypperManager) Install(ctx context.Context, pkg string) error {
	z.log(fmt.Sprintf("Installing %s via zypper", pkg))

	cmd := exec.CommandContext(ctx, "zypper", "--non-interactive", "install", pkg)
	if output, err := cmd.CombinedOutput(); err != nil {
		z.log(fmt.Sprintf("zypper installation of %s failed: %s", pkg, string(output)))
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

func (z *ZypperManager) log(message string) {
	if z.logFunc != nil {
		z.logFunc(message)
	}
}
