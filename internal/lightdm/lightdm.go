package lightdm

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const (
	ConfPath       = "/etc/lightdm/lightdm.conf"
	SeatSection    = "Seat:*"
	GreeterKey     = "greeter-session"
	GreeterSession = "web-greeter"
)

func init() {
	// lightdm.conf uses key=value without alignment padding.
	ini.PrettyFormat = false
}

// Configurator patches the LightDM configuration so the web greeter is
// selected at the next boot.
type Configurator struct {
	fs      afero.Fs
	logFunc func(string)
}

func NewConfigurator(filesystem afero.Fs, logFunc func(string)) *Configurator {
	return &Configurator{fs: filesystem, logFunc: logFunc}
}

// ConfigureSeat ensures lightdm.conf exists, ensures the [Seat:*] section
// exists, and sets greeter-session under it. Everything else in the file,
// comments included, is written back untouched.
func (c *Configurator) ConfigureSeat() error {
	return c.configureSeatAt(ConfPath)
}

func (c *Configurator) configureSeatAt(path string) error {
	source := []byte{}
	if data, err := afero.ReadFile(c.fs, path); err == nil {
		source = data
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := ini.Load(source)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Section(SeatSection).Key(GreeterKey).SetValue(GreeterSession)

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(c.fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.log(fmt.Sprintf("✓ Set %s=%s in %s", GreeterKey, GreeterSession, path))
	return nil
}

func (c *Configurator) log(message string) {
	if c.logFunc != nil {
		c.logFunc(message)
	}
}
