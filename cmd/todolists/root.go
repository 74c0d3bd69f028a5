package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todolists-api/internal/platform/config"
	"github.com/jsamuelsen11/todolists-api/internal/platform/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const envProfile = "APP_PROFILE"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	profile   string
	configDir string
}

// overrideFlags maps command-line flags onto the config keys they replace.
// Only flags set explicitly take part.
var overrideFlags = map[string]string{
	"db":   "storage.path",
	"port": "server.port",
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "todolists",
		Short:         "Todo lists and items REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(root)

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "",
		"configuration profile (local, dev, test, prod); defaults to $"+envProfile)
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", "configs",
		"directory holding base.yaml and {profile}.yaml")
	root.PersistentFlags().String("db", "",
		"sqlite database file; overrides storage.path")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	addServeFlags(cmd)
	return cmd
}

// addServeFlags registers the flags that only make sense when serving. The
// root command serves by default, so it gets them too.
func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("port", 0, "listen port; overrides server.port")
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, opts)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("todolists version %s\n", version)
		},
	}
}

// resolveProfile prefers the flag and falls back to $APP_PROFILE.
func resolveProfile(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(envProfile); env != "" {
		return env, nil
	}
	return "", errors.New("profile is required: pass --profile or set " + envProfile + " (e.g. local, dev, test, prod)")
}

// flagOverrides collects the explicitly set override flags of cmd, including
// inherited persistent ones.
func flagOverrides(cmd *cobra.Command) map[string]any {
	overrides := make(map[string]any)
	for name, key := range overrideFlags {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			overrides[key] = f.Value.String()
		}
	}
	return overrides
}

// bootstrap loads configuration for the selected profile and builds the root logger.
func bootstrap(cmd *cobra.Command, opts *rootOptions) (*config.Config, *slog.Logger, error) {
	profile, err := resolveProfile(opts.profile)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(profile,
		config.WithConfigDir(opts.configDir),
		config.WithOverrides(flagOverrides(cmd)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.FromConfig(cfg.Log, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)
	slog.SetDefault(logger)
	return cfg, logger, nil
}
