package pkgmanager

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

type AptManager struct {
	logFunc func(string)
}

func NewAptManager(logFunc func(string)) *AptManager {
	return &AptManager{logFunc: logFunc}
}

func (a *AptManager) Name() string { return "apt-get" }

func (a *AptManager) Refresh(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "apt-get", "update")
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	if output, err := cmd.CombinedOutput(); err != nil {
		a.log(fmt.Sprintf("apt-get update failed: %s", string(output)))
		return fmt.Errorf("failed to update apt package lists: %w", err)
	}
	return nil
}

func (a *AptManager) IsInstalled(ctx context.Context, pkg string) bool {
	cmd := exec.CommandContext(ctx, "dpkg", "-s", pkg)
	return cmd.Run() == nil
}

func (a *AptManager) Install(ctx context.Context, pkg string) error {
	a.log(fmt.Sprintf("Installing %s via apt", pkg))

	cmd := exec.CommandContext(ctx, "apt-get", "install", "-y", pkg)
	cmd.Env = append(os.Environ(), "DEBIAN_FRONTEND=noninteractive")
	if output, err := cmd.CombinedOutput(); err != nil {
		a.log(fmt.Sprintf("apt installation of %s failed: %s", pkg, string(output)))
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

func (a *AptManager) log(message string) {
	if a.logFunc != nil {
		a.logFunc(message)
	}
}
