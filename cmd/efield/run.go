package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/efield/internal/config"
	"github.com/san-kum/efield/internal/gui"
	"github.com/san-kum/efield/internal/numdiff"
	"github.com/san-kum/efield/internal/pipeline"
	"github.com/san-kum/efield/internal/render"
	"github.com/san-kum/efield/internal/stream"
	"github.com/san-kum/efield/internal/viz"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// loadConfig resolves defaults, preset, config file and flags in that
// order. Flags only override when set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nq") {
		cfg.NQ = nq
	}
	if flags.Changed("nx") {
		cfg.Grid.NX = nx
	}
	if flags.Changed("ny") {
		cfg.Grid.NY = ny
	}
	if flags.Changed("density") {
		cfg.Stream.Density = density
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("display") {
		cfg.Output.Display = display
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "efield",
	}), nil
}

func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runPipelines(cmd *cobra.Command, names ...string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	registry := pipeline.NewRegistry()
	var figs []*render.Figure
	for _, name := range names {
		run, err := registry.Get(name)
		if err != nil {
			return err
		}
		res, err := run(cfg, logger)
		if err != nil {
			return err
		}
		fig, err := render.Build(res, cfg.Stream, cfg.Output)
		if err != nil {
			return err
		}
		path, err := render.Save(cfg.Output.Dir, fig, cfg.Output.Format)
		if err != nil {
			return err
		}
		logger.Debug("figure written", "pipeline", name, "path", path, "lines", len(fig.Lines))
		logStops(logger, name, fig)
		printSummary(res, fig, path)
		figs = append(figs, fig)
	}

	switch cfg.Output.Display {
	case "term":
		if err := viz.Show(figs...); err != nil {
			if errors.Is(err, viz.ErrAborted) {
				logger.Warn("display aborted")
				return nil
			}
			return err
		}
	case "window":
		gui.Run(figs...)
	}
	return nil
}

// logStops reports how many line halves ended for each reason.
func logStops(logger *log.Logger, name string, fig *render.Figure) {
	counts := stream.StopCounts(fig.Lines)
	reasons := make([]string, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	kv := []interface{}{"pipeline", name}
	for _, reason := range reasons {
		kv = append(kv, reason, counts[reason])
	}
	logger.Debug("streamline stops", kv...)
}

func printSummary(res *pipeline.Result, fig *render.Figure, path string) {
	rows, cols := res.Grid.Shape()
	fmt.Println(nameStyle.Render(res.Name))
	row := func(label, value string) {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", label)), valueStyle.Render(value))
	}
	row("charges", fmt.Sprintf("%d", len(res.Charges)))
	row("grid", fmt.Sprintf("%dx%d", rows, cols))
	row("view", fmt.Sprintf("[%g, %g]", res.View.Min, res.View.Max))
	row("nonfinite", fmt.Sprintf("%d", res.NonFinite()))
	row("lines", fmt.Sprintf("%d", len(fig.Lines)))
	row("figure", path)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	results, err := pipeline.NewRegistry().RunAll(cfg, logger)
	if err != nil {
		return err
	}
	for _, res := range results {
		row := res.Grid.NearestRow(0)
		mag := numdiff.Magnitude(res.Ex, res.Ey)
		_, cols := mag.Dims()
		data := make([]float64, 0, cols)
		for j := 0; j < cols; j++ {
			v := math.Log10(mag.At(row, j))
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			data = append(data, v)
		}
		if len(data) == 0 {
			fmt.Printf("%s: no finite field along y=%.3f\n\n", res.Name, res.Grid.Y[row])
			continue
		}
		caption := fmt.Sprintf("%s: log10 |E| along y=%.3f", res.Name, res.Grid.Y[row])
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) {
	for _, name := range config.ListPresets() {
		fmt.Printf("%s %s\n", nameStyle.Render(fmt.Sprintf("%-12s", name)),
			labelStyle.Render(fmt.Sprintf("nq=%d", config.Presets[name])))
	}
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(strings.TrimLeft(string(data), "\n"))
	if writePath != "" {
		return config.Save(writePath, cfg)
	}
	return nil
}
