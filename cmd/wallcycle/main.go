package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	execAdapter "github.com/bft-labs/wallcycle/internal/adapters/exec"
	fsAdapter "github.com/bft-labs/wallcycle/internal/adapters/fs"
	logAdapter "github.com/bft-labs/wallcycle/internal/adapters/log"
	"github.com/bft-labs/wallcycle/internal/adapters/swww"
	"github.com/bft-labs/wallcycle/internal/adapters/trigger"
	"github.com/bft-labs/wallcycle/internal/app"
	"github.com/bft-labs/wallcycle/internal/cliconfig"
	"github.com/bft-labs/wallcycle/internal/domain"
	"github.com/bft-labs/wallcycle/internal/ports"
)

const helpDescription = `
Rotate your swww wallpaper through a set of image directories.

Highlights:
  - Picks a random image every interval, never the one already on screen.
  - Send SIGUSR1 (or touch the trigger file) to change immediately.
  - Follows symlinks; matches jpg, jpeg, png, gif, bmp, webp, tiff, tif.
  - Configure via file, env (WALLCYCLE_*), or flags.

Requires a running swww-daemon.
`

var exampleUsage = strings.TrimSpace(`
  wallcycle -i ~/Pictures/walls -i /srv/shared/walls -n 900
  wallcycle --config $HOME/.wallcycle/config.toml --trigger-file /tmp/wallcycle-next
  pkill -USR1 wallcycle
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, envFile string
	intervalSecs := int(cfg.Interval / time.Second)

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:          "wallcycle",
		Short:        "Rotate your swww wallpaper at a fixed interval or on demand",
		Long:         strings.TrimSpace(helpDescription),
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Dotenv values only fill variables that are not already set
			if envFile != "" {
				if err := cliconfig.LoadEnvFile(envFile); err != nil {
					return fmt.Errorf("load env file: %w", err)
				}
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("config file %s does not exist", cfgPath)
			}

			// Environment overrides file config but not explicit flags
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if changed[cliconfig.FlagInterval] {
				interval, err := cliconfig.SecondsToInterval(intervalSecs)
				if err != nil {
					return err
				}
				cfg.Interval = interval
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cliconfig.SetLogLevel(cfg.LogLevel); err != nil {
				return err
			}
			log = cliconfig.Logger()
			log.Info().Interface("config", cfg).Msg("configuration")

			logger := logAdapter.NewZerologAdapterWithLogger(log)

			// SIGINT/SIGTERM end the loop gracefully
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sources := []ports.TriggerSource{trigger.NewSignalSource(nil)}
			if cfg.TriggerFile != "" {
				sources = append(sources, trigger.NewFileSource(cfg.TriggerFile, logger))
			}
			hub := trigger.NewHub(logger, sources...)
			if err := hub.Start(ctx); err != nil {
				return err
			}

			catalog := fsAdapter.NewCatalogBuilder(osfs.New("/"), logger).Discover(cfg.ImagePaths)
			if catalog.Empty() {
				return domain.ErrEmptyCatalog
			}
			log.Info().Int("images", catalog.Len()).Msg("starting wallpaper switcher")

			rotation := cfg.RotationConfig()
			display := swww.NewClient(cfg.SwwwBin, execAdapter.NewRunner(), logger)
			rotator := app.NewRotator(catalog, display, app.NewSelector(), rotation.Transition, logger)
			scheduler := app.NewScheduler(rotation, rotator, hub.C(), app.NewLifecycle(logger, nil), logger, nil)

			return scheduler.Run(ctx)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.wallcycle/config.toml; .yaml/.yml also accepted)")
	root.Flags().StringVar(&envFile, "env-file", "", "dotenv file with WALLCYCLE_* variables")

	root.Flags().StringSliceVarP(&cfg.ImagePaths, cliconfig.FlagImagePaths, "i", cfg.ImagePaths, "directories to search for images (repeatable, required)")
	root.Flags().IntVarP(&intervalSecs, cliconfig.FlagInterval, "n", intervalSecs, "interval in seconds between changes")
	root.Flags().StringVarP(&cfg.TransitionType, cliconfig.FlagTransitionType, "t", cfg.TransitionType, "swww transition type")
	root.Flags().IntVarP(&cfg.TransitionDurationSecs, cliconfig.FlagTransitionDuration, "d", cfg.TransitionDurationSecs, "transition duration in seconds")

	root.Flags().StringVar(&cfg.TriggerFile, cliconfig.FlagTriggerFile, cfg.TriggerFile, "change immediately whenever this file is written or created")
	root.Flags().StringVar(&cfg.SwwwBin, cliconfig.FlagSwwwBin, cfg.SwwwBin, "swww client executable")
	if err := root.Flags().MarkHidden(cliconfig.FlagSwwwBin); err != nil {
		log.Info().Err(err).Msg("failed to hide swww-bin flag")
	}
	root.Flags().StringVar(&cfg.LogLevel, cliconfig.FlagLogLevel, cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Once, cliconfig.FlagOnce, cfg.Once, "change the wallpaper once and exit")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("wallcycle")
		os.Exit(1)
	}
}
