package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/efield/internal/pipeline"
)

var (
	configFile string
	preset     string
	nq         int
	nx         int
	ny         int
	density    float64
	outDir     string
	format     string
	display    string
	logLevel   string
	writePath  string
)

// main executes the root command, exiting with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "efield",
		Short: "electrostatic field and potential of point charges",
		Long: "efield places nq alternating point charges on the unit circle, computes\n" +
			"their field directly and from the potential gradient, and draws\n" +
			"streamline figures of both.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipelines(cmd, pipeline.NameField, pipeline.NamePotential)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&nq, "nq", 2, "number of charges")
	pf.IntVar(&nx, "nx", 64, "grid points along x")
	pf.IntVar(&ny, "ny", 64, "grid points along y")
	pf.Float64Var(&density, "density", 2, "streamline density")
	pf.StringVarP(&outDir, "out", "o", ".", "output directory for figures")
	pf.StringVar(&format, "format", "png", "figure format (png|svg)")
	pf.StringVar(&display, "display", "none", "display figures (none|term|window)")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "run the field-direct pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipelines(cmd, pipeline.NameField)
		},
	}

	potentialCmd := &cobra.Command{
		Use:   "potential",
		Short: "run the potential-gradient pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipelines(cmd, pipeline.NamePotential)
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot log10 |E| along the row closest to y=0",
		Args:  cobra.NoArgs,
		RunE:  runProfile,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		Run:   listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}
	configCmd.Flags().StringVar(&writePath, "write", "", "also write the configuration to this path")

	rootCmd.AddCommand(fieldCmd, potentialCmd, profileCmd, presetsCmd, configCmd)
	return rootCmd
}
