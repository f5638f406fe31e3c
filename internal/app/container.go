package app

import (
	"context"
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"

	appconfig "github.com/doeshing/cdw/internal/application/config"
	"github.com/doeshing/cdw/internal/application/doctor"
	"github.com/doeshing/cdw/internal/application/navigate"
	"github.com/doeshing/cdw/internal/application/setup"
	"github.com/doeshing/cdw/internal/domain"
	"github.com/doeshing/cdw/internal/infrastructure/cmdexec"
	"github.com/doeshing/cdw/internal/infrastructure/config"
	"github.com/doeshing/cdw/internal/infrastructure/process"
	"github.com/doeshing/cdw/internal/infrastructure/shell"
	"github.com/doeshing/cdw/internal/pkg/filesystem"
	"github.com/doeshing/cdw/internal/pkg/logger"
	"github.com/doeshing/cdw/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config domain.Config
	// ConfigErr is set when the config file could not be used and Config holds the defaults.
	ConfigErr       error
	ConfigLoader    *config.FileLoader
	Logger          *logger.ZapLogger
	ShellDetector   ports.ShellDetector
	ShellIntegrator ports.ShellIntegrator
	NavigateService *navigate.Service
	SetupService    *setup.Service
	DoctorService   *doctor.Service
}

// BuildContainer constructs the dependency graph. Nothing here touches the
// filesystem beyond reading the config; home is only required once an
// installer method runs. A broken config file falls back to the defaults so
// path translation keeps working; --doctor reports the problem.
func BuildContainer(ctx context.Context, verbose bool) *Container {
	fs := osfs.New("/")
	cfgLoader := config.NewFileLoader(fs, "")
	cfg, cfgErr := loadConfig(ctx, cfgLoader)
	if cfgErr != nil {
		cfg = cfgLoader.DefaultConfig()
	}

	log := logger.New(verbose || cfg.Debug)
	if cfgErr != nil {
		log.Warn("using default configuration", map[string]interface{}{"error": cfgErr.Error()})
	}
	runner := cmdexec.NewRealCommander()
	detector := shell.NewDetector(process.NewPSInspector(runner, log), runner, log)

	// A missing home surfaces as domain.ErrHomeNotSet from the installer.
	home, err := filesystem.UserHomeDir()
	if err != nil {
		log.Debug("home directory unavailable", map[string]interface{}{"error": err.Error()})
	}
	installer := shell.NewInstaller(fs, home, cfg.ConfigDir, log)

	return &Container{
		Config:          cfg,
		ConfigErr:       cfgErr,
		ConfigLoader:    cfgLoader,
		Logger:          log,
		ShellDetector:   detector,
		ShellIntegrator: installer,
		NavigateService: &navigate.Service{
			Translator: domain.NewTranslator(cfg.MountRoot),
			Logger:     log,
		},
		SetupService: &setup.Service{
			ConfigStore:     cfgLoader,
			ShellDetector:   detector,
			ShellIntegrator: installer,
			Logger:          log,
		},
		DoctorService: &doctor.Service{
			ConfigProvider:  cfgLoader,
			ShellDetector:   detector,
			ShellIntegrator: installer,
		},
	}
}

func loadConfig(ctx context.Context, loader *config.FileLoader) (domain.Config, error) {
	cfg, err := loader.Load(ctx)
	if err != nil {
		return domain.Config{}, err
	}
	if err := appconfig.Validate(cfg); err != nil {
		return domain.Config{}, fmt.Errorf("invalid config %s: %w", loader.Path(), err)
	}
	return cfg, nil
}
