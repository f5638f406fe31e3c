package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cdw/internal/app"
	"github.com/doeshing/cdw/internal/application/navigate"
	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/version"
)

// shellAutoDetect is the value --init-display takes when given without one.
const shellAutoDetect = "auto"

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

type flags struct {
	init        bool
	initAll     bool
	initDisplay string
	verbose     bool
	convert     bool
	shell       string
	uninstall   bool
	doctor      bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) *cobra.Command {
	return newRootCmd(app.BuildContainer(ctx, opts.Verbose))
}

func newRootCmd(container *app.Container) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "cdw [PATH]",
		Short: "Change directory to a Windows path in WSL with ease",
		Long: `cdw converts a Windows path such as C:\Users\me into its WSL form
(/mnt/c/Users/me) and, through the shell function installed by --init,
changes the current directory to it.`,
		Version:       version.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, container, f, args)
		},
	}

	fl := root.Flags()
	fl.BoolVarP(&f.init, "init", "i", false, "Initialize shell function")
	fl.StringVar(&f.initDisplay, "init-display", "", "Display shell function")
	fl.Lookup("init-display").NoOptDefVal = shellAutoDetect
	fl.BoolVar(&f.initAll, "init-all", false, "Initialize shell function for all available shells")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose mode")
	fl.BoolVarP(&f.convert, "convert", "c", false, "Convert path without changing directory")
	fl.StringVar(&f.shell, "shell", "", fmt.Sprintf("Shell for --init/--uninstall (%s, detected by default)", strings.Join(domain.ShellKindNames(), "|")))
	fl.BoolVar(&f.uninstall, "uninstall", false, "Remove the shell function from the shell configuration")
	fl.BoolVar(&f.doctor, "doctor", false, "Report shell integration status")

	return root
}

func run(cmd *cobra.Command, container *app.Container, f flags, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case f.init:
		return container.SetupService.Init(ctx, out, f.shell)
	case f.initAll:
		return container.SetupService.InitAll(ctx, out)
	case cmd.Flags().Changed("init-display"):
		return container.SetupService.Display(ctx, out, displayTarget(f.initDisplay, args))
	case f.uninstall:
		return container.SetupService.Uninstall(ctx, out, f.shell)
	case f.doctor:
		report, err := container.DoctorService.Run(ctx)
		RenderHealthReport(out, report)
		return err
	case len(args) == 1:
		_, err := container.NavigateService.Run(out, navigate.Request{
			WindowsPath: args[0],
			Convert:     f.convert,
			Verbose:     f.verbose,
		})
		return err
	default:
		if err := cmd.Help(); err != nil {
			return fmt.Errorf("print help: %w", err)
		}
		return domain.ErrNoAction
	}
}

// displayTarget accepts both --init-display=fish and --init-display fish.
func displayTarget(value string, args []string) string {
	if value != shellAutoDetect {
		return value
	}
	if len(args) == 1 {
		return args[0]
	}
	return ""
}
