package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/dataset"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
)

const envPrefix = "LINECHART"

// app is the state shared by every command.
type app struct {
	fs     afero.Fs
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	cmd := &cobra.Command{
		Use:   "linechart",
		Short: "Render time-series line charts",
		Long: `linechart renders dated numeric observations as a smoothed line chart
and exports it as SVG, PNG or xlsx.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (yaml, json or toml)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.Float64("width", 640, "Host element width in pixels")
	pf.Float64("viewport-height", 800, "Viewport height in pixels")
	pf.String("id", "", "Chart element id (default: random)")
	pf.String("x-format", "Jan 2006", "Go time layout for x-axis tick labels")
	pf.StringSlice("colors", nil, "Series colors")
	pf.Bool("legend", false, "Compute legend entries")
	pf.String("sheet", "", "Sheet to read from xlsx input (default: first)")

	cmd.AddCommand(newRenderCmd(a), newInspectCmd(a))
	return cmd
}

// init binds flags, environment and the config file, then sets up
// logging.
func (a *app) init(cmd *cobra.Command) error {
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetFs(a.fs)
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	level, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err == nil {
			err = v.BindPFlag(f.Name, f)
		}
	})
	return err
}

func newLogger(w io.Writer, level log.Level) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return slog.New(handler)
}

// chartConfig builds the chart configuration from the bound settings.
func (a *app) chartConfig() (linechart.Config, error) {
	cfg := linechart.DefaultConfig()
	cfg.ID = a.v.GetString("id")
	cfg.HostWidth = a.v.GetFloat64("width")
	cfg.ViewportHeight = a.v.GetFloat64("viewport-height")
	cfg.Colors = a.v.GetStringSlice("colors")
	cfg.HasLegend = a.v.GetBool("legend")
	cfg.Title = a.v.GetString("title")
	cfg.ProductName = a.v.GetString("product")
	cfg.Logger = a.logger

	if layout := a.v.GetString("x-format"); layout != "" {
		cfg.XTickFormat = func(t time.Time) string { return t.Format(layout) }
	}

	filters, err := parseFilters(a.v.GetStringSlice("filter"))
	if err != nil {
		return cfg, err
	}
	cfg.Filters = filters
	return cfg, nil
}

// load reads and sorts the samples in path.
func (a *app) load(path string) ([]models.Sample, error) {
	opts := dataset.DefaultOptions()
	opts.Sheet = a.v.GetString("sheet")

	samples, err := dataset.LoadFile(a.fs, path, opts)
	if err != nil {
		return nil, err
	}
	dataset.Sort(samples)
	a.logger.Debug("loaded samples", "path", path, "count", len(samples))
	return samples, nil
}

// parseFilters turns "key=value" pairs into a filter map. Repeated keys
// accumulate values.
func parseFilters(pairs []string) (map[string][]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string][]string)
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid filter %q (want key=value)", p)
		}
		out[k] = append(out[k], v)
	}
	return out, nil
}
