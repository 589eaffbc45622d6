package pkgmanager

import (
	"context"
	"fmt"
	"os/exec"
)

type PacmanManager struct {
	logFunc func(string)
}

func NewPacmanManager(logFunc func(string)) *PacmanManager {
	return &PacmanManager{logFunc: logFunc}
}

func (p *PacmanManager) Name() string { return "pacman" }

func (p *PacmanManager) Refresh(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "pacman", "-Sy")
	if output, err := cmd.CombinedOutput(); err != nil {
		p.log(fmt.Sprintf("pacman -Sy failed: %s", string(output)))
		return fmt.Errorf("failed to sync pacman databases: %w", err)
	}
	return nil
}

func (p *PacmanManager) IsInstalled(ctx context.Context, pkg string) bool {
	cmd := exec.CommandContext(ctx, "pacman", "-Qi", pkg)
	return cmd.Run() == nil
}

func (p *PacmanManager) Install(ctx context.Context, pkg string) error {
	p.log(fmt.Sprintf("Installing %s via pacman", pkg))

	cmd := exec.CommandContext(ctx, "pacman", "-S", "--needed", "--noconfirm", pkg)
	if output, err := cmd.CombinedOutput(); err != nil {
		p.log(fmt.Sprintf("pacman installation of %s failed: %s", pkg, string(output)))
		return fmt.Errorf("failed to install %s: %w", pkg, err)
	}
	return nil
}

func (p *PacmanManager) log(message string) {
	if p.logFunc != nil {
		p.logFunc(message)
	}
}
