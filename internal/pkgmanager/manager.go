package pkgmanager

import (
	"context"
	"os/exec"

	"github.com/velvetfox/riceup/internal/errdefs"
)

// Manager is one package-manager backend. Install failures are reported to
// the caller; whether they abort anything is the caller's policy.
type Manager interface {
	Name() string
	Refresh(ctx context.Context) error
	IsInstalled(ctx context.Context, pkg string) bool
	Install(ctx context.Context, pkg string) error
}

// probeOrder is fixed: the first backend whose binary resolves wins, even if
// several are present on the system.
var probeOrder = []func(logFunc func(string)) Manager{
	func(l func(string)) Manager { return NewAptManager(l) },
	func(l func(string)) Manager { return NewPacmanManager(l) },
	func(l func(string)) Manager { return NewDNFManager(l) },
	func(l func(string)) Manager { return NewZypperManager(l) },
}

// Detect probes for a supported package manager in precedence order
// (apt, pacman, dnf, zypper).
func Detect(logFunc func(string)) (Manager, error) {
	for _, construct := range probeOrder {
		mgr := construct(logFunc)
		if commandExists(mgr.Name()) {
			return mgr, nil
		}
	}
	return nil, errdefs.NewCustomError(errdefs.ErrTypeUnsupportedPackageManager,
		"no supported package manager found (looked for apt-get, pacman, dnf, zypper)")
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
