package main

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	cblog "github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/velvetfox/riceup/internal/deploy"
	"github.com/velvetfox/riceup/internal/deps"
	"github.com/velvetfox/riceup/internal/fonts"
	"github.com/velvetfox/riceup/internal/greeter"
	"github.com/velvetfox/riceup/internal/lightdm"
	"github.com/velvetfox/riceup/internal/log"
	"github.com/velvetfox/riceup/internal/pkgmanager"
	"github.com/velvetfox/riceup/internal/sequencer"
	"github.com/velvetfox/riceup/internal/service"
	"github.com/velvetfox/riceup/internal/tui"
	"github.com/velvetfox/riceup/internal/userctx"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Run the full provisioning sequence",
	Long:  "Runs the ordered provisioning steps: cleanup, dependency installation, greeter build, fonts, configuration trees, display-manager setup, and permission finalization. Requires root.",
	RunE:  runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	if viper.GetBool("verbose") {
		log.SetLevel(cblog.DebugLevel)
	}

	if err := userctx.RequireRoot(); err != nil {
		return err
	}
	usr, err := userctx.Resolve()
	if err != nil {
		return err
	}
	log.Infof("Provisioning desktop for %s (home %s)", usr.Username, usr.Home)

	if viper.GetBool("interactive") {
		return runInteractive(cmd.Context(), usr)
	}
	return runPlain(cmd.Context(), usr)
}

func runPlain(ctx context.Context, usr *userctx.Context) error {
	logFunc := func(msg string) { log.Info(msg) }

	steps, err := buildSteps(usr, logFunc)
	if err != nil {
		return err
	}

	events := make(chan sequencer.Event)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range events {
			switch ev.Kind {
			case sequencer.EventStarted:
				log.Infof("[%d/%d] %s", ev.Index+1, ev.Total, ev.Step)
			case sequencer.EventWarned:
				log.Warnf("Step %s failed, continuing: %v", ev.Step, ev.Err)
			case sequencer.EventFailed:
				log.Errorf("Step %s failed: %v", ev.Step, ev.Err)
			}
		}
	}()

	runErr := sequencer.NewRunner(steps, events).Run(ctx)
	wg.Wait()
	if runErr != nil {
		return runErr
	}

	log.Info("Provisioning complete. Log out to reach the new greeter.")
	return nil
}

func runInteractive(ctx context.Context, usr *userctx.Context) error {
	lines := make(chan string, 64)
	logFunc := func(msg string) {
		select {
		case lines <- msg:
		default:
		}
	}

	steps, err := buildSteps(usr, logFunc)
	if err != nil {
		return err
	}
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name
	}

	events := make(chan sequencer.Event)
	done := make(chan struct{})
	var runErr error
	go func() {
		defer close(done)
		runErr = sequencer.NewRunner(steps, events).Run(ctx)
		close(lines)
	}()

	model := tui.NewModel(names, events, lines)
	_, uiErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	// The UI may quit before the runner finishes (ctrl+c). There is no
	// cancellation mid-run; drain the channel and wait it out.
	go func() {
		for range events {
		}
	}()
	<-done

	if uiErr != nil {
		return uiErr
	}
	return runErr
}

// buildSteps wires every collaborator into the fixed step list. Package
// manager detection happens here: like missing privilege or an undetectable
// user, an unsupported package manager fails the run before any step mutates
// the system.
func buildSteps(usr *userctx.Context, logFunc func(string)) ([]sequencer.Step, error) {
	mgr, err := pkgmanager.Detect(logFunc)
	if err != nil {
		return nil, err
	}
	logFunc("Using package manager: " + mgr.Name())

	theme := viper.GetString("theme")
	fsys := afero.NewOsFs()

	deployer := deploy.NewDeployer(fsys, logFunc)
	depInstaller := deps.NewInstaller(mgr, logFunc)
	builder := greeter.NewBuilder(viper.GetString("greeter-repo"), viper.GetString("greeter-ref"), logFunc)
	fontInstaller := fonts.NewInstaller(fsys, logFunc)
	ldm := lightdm.NewConfigurator(fsys, logFunc)
	enabler := service.NewEnabler(logFunc)

	return []sequencer.Step{
		{
			Name:     "cleanup",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				return deployer.Cleanup(usr, theme)
			},
		},
		{
			Name:     "install-dependencies",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				depInstaller.EnsureAll(ctx, deps.Catalog())
				return nil
			},
		},
		{
			Name:     "install-greeter",
			Severity: sequencer.Fatal,
			Run:      builder.Install,
		},
		{
			Name:     "install-fonts",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				return fontInstaller.Install(ctx, usr)
			},
		},
		{
			Name:     "install-configs",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				if _, err := deployer.DeployConfigs(ctx, usr); err != nil {
					return err
				}
				if err := deployer.DeployBrowserCustomization(usr); err != nil {
					return err
				}
				if err := deployer.InstallTheme(theme); err != nil {
					return err
				}
				return ldm.SetTheme(theme)
			},
		},
		{
			Name:     "configure-display-manager",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				if err := ldm.ConfigureSeat(); err != nil {
					return err
				}
				return enabler.EnableUnit(ctx, "lightdm.service")
			},
		},
		{
			Name:     "set-permissions",
			Severity: sequencer.Recoverable,
			Run: func(ctx context.Context) error {
				return deployer.FinalizePermissions(usr)
			},
		},
	}, nil
}
