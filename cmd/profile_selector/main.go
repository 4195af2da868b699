package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ksts/profileselector/internal/config"
	"github.com/ksts/profileselector/internal/details"
	"github.com/ksts/profileselector/internal/logging"
	"github.com/ksts/profileselector/internal/otel"
	"github.com/ksts/profileselector/internal/projector"
	"github.com/ksts/profileselector/internal/selection"
)

// module defs - Version can be set at build time via ldflags
var (
	Version string = "0.1.0"
	AppName string = "profile_selector"
)

type runOptions struct {
	configDir   string
	search      string
	selectIndex int
	selectID    uint
	interactive bool
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:     AppName,
		Short:   "Browse, filter, and pick recorded mission profiles",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", ".", "Directory containing "+config.ConfigFileName)
	flags.StringVarP(&opts.search, "search", "s", "", "Only list profiles whose name or vessel contains this text")
	flags.IntVar(&opts.selectIndex, "select", -1, "Select the listed profile at this index")
	flags.UintVar(&opts.selectID, "select-id", 0, "Select the profile with this ID before listing")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Pick a profile from an interactive list")
	flags.Bool("hide-invalid", true, "Hide profiles that fail a filter")
	flags.String("details", "altitude", "Detail shown for the selected profile: altitude or payload")
	flags.String("source", "", "Profile source type: yaml, sqlite or postgres")
	flags.String("path", "", "Profile YAML file or SQLite database")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	addFilterFlags(flags)

	return cmd
}

func bindFlags(cmd *cobra.Command) error {
	bindings := map[string]string{
		"selector.hideInvalid": "hide-invalid",
		"selector.details":     "details",
		"source.type":          "source",
		"source.path":          "path",
		"logLevel":             "log-level",
	}
	for key, name := range bindings {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

func run(cmd *cobra.Command, opts *runOptions) error {
	var notFound viper.ConfigFileNotFoundError
	if err := config.Load(opts.configDir); err != nil && !errors.As(err, &notFound) {
		return err
	}
	if err := bindFlags(cmd); err != nil {
		return err
	}

	filters, err := buildFilter(cmd.Flags())
	if err != nil {
		return err
	}

	selectorCfg := config.GetSelectorConfig()
	mode, err := details.ParseMode(selectorCfg.Details)
	if err != nil {
		return err
	}

	logFile := openLogFile(config.GetString("logsDir"))
	if logFile != nil {
		defer logFile.Close()
	}

	metricWriter := cmd.ErrOrStderr()
	if logFile != nil {
		metricWriter = logFile
	}

	otelCfg := config.GetOTelConfig()
	otelProvider, err := otel.New(otel.Config{
		Enabled:        otelCfg.Enabled,
		ServiceName:    otelCfg.ServiceName,
		ExportInterval: otelCfg.ExportInterval,
		MetricWriter:   metricWriter,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize OTel: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = otelProvider.Shutdown(ctx)
	}()

	reg, err := openRegistry(config.GetSourceConfig(), config.GetDBConfig(), config.GetString("logLevel"))
	if err != nil {
		return err
	}

	ctrl := selection.NewController(reg)
	slogManager := logging.NewSlogManager()
	slogManager.Setup(logFile, cmd.ErrOrStderr(), config.GetString("logLevel"), func() []slog.Attr {
		if id, ok := ctrl.Current(); ok {
			return []slog.Attr{slog.Uint64("selectedProfile", uint64(id))}
		}
		return nil
	})
	logger := slogManager.Logger()
	if otelProvider.Enabled() {
		logger.Info("Exporting metrics", "service", otelCfg.ServiceName, "interval", otelCfg.ExportInterval)
	}

	if opts.selectID != 0 && !ctrl.Select(opts.selectID) {
		logger.Warn("Profile to select not found", "id", opts.selectID)
	}

	proj, err := projector.New(logger)
	if err != nil {
		return err
	}

	view := projector.ViewState{Search: opts.search, HideInvalid: selectorCfg.HideInvalid}
	result := proj.Project(context.Background(), reg.Profiles(), filters, view, ctrl.Selected())

	out := cmd.OutOrStdout()
	renderList(out, result, reg.Len(), view)

	index := opts.selectIndex
	if opts.interactive && len(result.Visible) > 0 {
		index, err = pickInteractive(result)
		if err != nil {
			return err
		}
	}
	if index >= 0 {
		if ctrl.SelectFromProjection(index, result) {
			logger.Info("Profile selected", "index", index)
		} else if result.IsInvalid(index) {
			fmt.Fprintf(out, "Profile %d does not match the active filters and cannot be selected.\n", index)
		} else if index >= len(result.Visible) {
			fmt.Fprintf(out, "No profile at index %d.\n", index)
		}
	}

	renderSelected(out, reg, ctrl, mode)
	return nil
}

func openLogFile(logsDir string) io.WriteCloser {
	if logsDir == "" {
		return nil
	}
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to create logs dir: %v\n", err)
		return nil
	}
	return logging.NewRotatingFile(logging.LogFilePath(logsDir, AppName, time.Now()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
