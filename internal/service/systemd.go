package service

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/godbus/dbus/v5"
)

const (
	systemdDest    = "org.freedesktop.systemd1"
	systemdPath    = "/org/freedesktop/systemd1"
	systemdManager = "org.freedesktop.systemd1.Manager"
)

// Enabler turns on the display-manager unit so the greeter comes up at boot.
// It talks to systemd over the system bus and falls back to systemctl when
// the bus is not reachable (containers, chroots).
type Enabler struct {
	logFunc func(string)
}

func NewEnabler(logFunc func(string)) *Enabler {
	return &Enabler{logFunc: logFunc}
}

// EnableUnit enables the unit and reloads the systemd configuration.
func (e *Enabler) EnableUnit(ctx context.Context, unit string) error {
	if err := e.enableViaBus(ctx, unit); err == nil {
		e.log(fmt.Sprintf("✓ Enabled %s via systemd D-Bus API", unit))
		return nil
	} else {
		e.log(fmt.Sprintf("systemd bus unavailable (%v), falling back to systemctl", err))
	}

	if _, err := exec.LookPath("systemctl"); err != nil {
		return fmt.Errorf("no way to enable %s: system bus unreachable and systemctl not found", unit)
	}

	cmd := exec.CommandContext(ctx, "systemctl", "enable", unit)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("systemctl enable %s: %w\n%s", unit, err, string(output))
	}
	e.log(fmt.Sprintf("✓ Enabled %s via systemctl", unit))
	return nil
}

func (e *Enabler) enableViaBus(ctx context.Context, unit string) error {
	conn, err := dbus.SystemBusPrivate()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Auth(nil); err != nil {
		return err
	}
	if err := conn.Hello(); err != nil {
		return err
	}

	obj := conn.Object(systemdDest, dbus.ObjectPath(systemdPath))

	// EnableUnitFiles(files, runtime, force)
	call := obj.CallWithContext(ctx, systemdManager+".EnableUnitFiles", 0,
		[]string{unit}, false, true)
	if call.Err != nil {
		return call.Err
	}

	return obj.CallWithContext(ctx, systemdManager+".Reload", 0).Err
}

func (e *Enabler) log(message string) {
	if e.logFunc != nil {
		e.logFunc(message)
	}
}
