package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/flowmate/internal/config"
	"github.com/san-kum/flowmate/internal/hamiltonian"
	"github.com/san-kum/flowmate/internal/phase"
	"github.com/san-kum/flowmate/internal/render"
	"github.com/san-kum/flowmate/internal/viz"
	"github.com/spf13/cobra"
)

var (
	qMin, qMax float64
	qSamples   int
	pMin, pMax float64
	pSamples   int
	setParams  []string
	density    float64
	cmapName   string
	dpi        float64
	vecField   bool
	output     string
	darkMode   bool
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowmate",
		Short: "hamiltonian phase portrait toolkit",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive viewer when no command given
			return viewSystem(cmd, []string{config.DefaultSystem})
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [system]",
		Short: "render phase portrait to PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderPortrait,
	}
	addGridFlags(renderCmd)
	renderCmd.Flags().Float64Var(&density, "density", config.DefaultDensity, "streamline density")
	renderCmd.Flags().StringVar(&cmapName, "cmap", config.DefaultCmap, "colormap")
	renderCmd.Flags().Float64Var(&dpi, "dpi", config.DefaultDPI, "output resolution")
	renderCmd.Flags().BoolVar(&vecField, "vec-field", false, "overlay quiver plot")
	renderCmd.Flags().StringVar(&output, "output", config.DefaultOutput, "output path")
	renderCmd.Flags().BoolVar(&darkMode, "dark-mode", true, "dark background")
	renderCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	viewCmd := &cobra.Command{
		Use:   "view [system]",
		Short: "interactive terminal phase portrait",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewSystem,
	}
	addGridFlags(viewCmd)
	viewCmd.Flags().StringVar(&cmapName, "cmap", config.DefaultCmap, "colormap")
	viewCmd.Flags().BoolVar(&vecField, "vec-field", false, "overlay quiver plot")
	viewCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	viewCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	inspectCmd := &cobra.Command{
		Use:   "inspect [system]",
		Short: "vector field statistics and magnitude sections",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspectField,
	}
	addGridFlags(inspectCmd)
	inspectCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	inspectCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list available systems",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, viewCmd, inspectCmd, systemsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&qMin, "qmin", config.DefaultQMin, "position lower bound")
	cmd.Flags().Float64Var(&qMax, "qmax", config.DefaultQMax, "position upper bound")
	cmd.Flags().IntVar(&qSamples, "qn", config.DefaultQSamples, "position samples")
	cmd.Flags().Float64Var(&pMin, "pmin", config.DefaultPMin, "momentum lower bound")
	cmd.Flags().Float64Var(&pMax, "pmax", config.DefaultPMax, "momentum upper bound")
	cmd.Flags().IntVar(&pSamples, "pn", config.DefaultPSamples, "momentum samples")
	cmd.Flags().StringArrayVar(&setParams, "set", nil, "set a system parameter (name=value, repeatable)")
}

// buildConfig resolves preset, config file and CLI flags in that order;
// flags the user actually set win over the config file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	system := ""
	if len(args) > 0 {
		system = args[0]
	}

	if preset != "" {
		if system == "" {
			return nil, fmt.Errorf("--preset requires a system argument")
		}
		p := config.GetPreset(system, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if system != "" {
		cfg.System = system
	}

	if cmd.Flags().Changed("qmin") {
		cfg.Grid.QMin = qMin
	}
	if cmd.Flags().Changed("qmax") {
		cfg.Grid.QMax = qMax
	}
	if cmd.Flags().Changed("qn") {
		cfg.Grid.QSamples = qSamples
	}
	if cmd.Flags().Changed("pmin") {
		cfg.Grid.PMin = pMin
	}
	if cmd.Flags().Changed("pmax") {
		cfg.Grid.PMax = pMax
	}
	if cmd.Flags().Changed("pn") {
		cfg.Grid.PSamples = pSamples
	}
	if cmd.Flags().Changed("density") {
		cfg.Render.Density = density
	}
	if cmd.Flags().Changed("cmap") {
		cfg.Render.Cmap = cmapName
	}
	if cmd.Flags().Changed("dpi") {
		cfg.Render.DPI = dpi
	}
	if cmd.Flags().Changed("vec-field") {
		cfg.Render.VecField = vecField
	}
	if cmd.Flags().Changed("output") {
		cfg.Render.Output = output
	}
	if cmd.Flags().Changed("dark-mode") {
		cfg.Render.DarkMode = darkMode
	}

	return cfg, nil
}

// buildSystem resolves the configured system and applies parameter
// overrides, config file first, then --set flags.
func buildSystem(cfg *config.Config) (hamiltonian.System, error) {
	registry := hamiltonian.NewRegistry()
	sys, err := registry.Get(cfg.System)
	if err != nil {
		return nil, err
	}
	for name, val := range cfg.Params {
		if err := sys.SetParam(name, val); err != nil {
			return nil, err
		}
	}
	for _, kv := range setParams {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad --set value: %q (want name=value)", kv)
		}
		val, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad --set value: %q: %w", kv, err)
		}
		if err := sys.SetParam(parts[0], val); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

func buildGrid(cfg *config.Config) phase.Grid {
	return phase.Meshgrid(
		phase.Linspace(cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.QSamples),
		phase.Linspace(cfg.Grid.PMin, cfg.Grid.PMax, cfg.Grid.PSamples),
	)
}

func renderPortrait(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("rendering %s phase portrait...\n", sys.Name())
	start := time.Now()

	opts := cfg.RenderOptions()
	img, err := render.Render(sys.Equations(), buildGrid(cfg), nil, opts)
	if err != nil {
		return err
	}
	if err := render.Save(img, opts.Output); err != nil {
		return err
	}

	bounds := img.Bounds()
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("wrote %s (%dx%d px, %.0f dpi)\n", opts.Output, bounds.Dx(), bounds.Dy(), opts.DPI)
	return nil
}

func viewSystem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	m := viz.NewModel(sys.Name(), sys.Equations(), nil,
		cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.PMin, cfg.Grid.PMax, cfg.Render.Cmap)
	return viz.Run(m)
}

func inspectField(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	sys, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	g := buildGrid(cfg)
	rows, cols := g.Shape()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("empty grid")
	}

	f := phase.Evaluate(sys.Equations(), g)
	mag := f.Magnitude()
	magMin, magMax := f.MagnitudeRange()

	stagnant := 0
	for i := range mag {
		for j := range mag[i] {
			if mag[i][j] < 1e-9 {
				stagnant++
			}
		}
	}

	fmt.Printf("system: %s\n", sys.Name())
	fmt.Printf("params:")
	for name, val := range sys.Params() {
		fmt.Printf(" %s=%g", name, val)
	}
	fmt.Println()
	fmt.Printf("grid: %dx%d  q:[%g, %g]  p:[%g, %g]\n",
		cols, rows, cfg.Grid.QMin, cfg.Grid.QMax, cfg.Grid.PMin, cfg.Grid.PMax)
	fmt.Printf("|v|: min %.6f  max %.6f\n", magMin, magMax)
	fmt.Printf("stagnation points: %d of %d\n\n", stagnant, rows*cols)

	midRow := rows / 2
	rowData := make([]float64, cols)
	for j := 0; j < cols; j++ {
		rowData[j] = mag[midRow][j]
	}
	fmt.Println(asciigraph.Plot(rowData,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("|v| along p = %.2f", g.P[midRow][0])),
	))
	fmt.Println()

	midCol := cols / 2
	colData := make([]float64, rows)
	for i := 0; i < rows; i++ {
		colData[i] = mag[i][midCol]
	}
	fmt.Println(asciigraph.Plot(colData,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("|v| along q = %.2f", g.Q[0][midCol])),
	))
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	registry := hamiltonian.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPARAMS\tH(0, 1)")

	for _, name := range registry.Names() {
		sys, err := registry.Get(name)
		if err != nil {
			return err
		}
		params := make([]string, 0)
		for pname, val := range sys.Params() {
			params = append(params, fmt.Sprintf("%s=%g", pname, val))
		}
		energy := sys.Energy(0, 1)
		energyStr := fmt.Sprintf("%.4f", energy)
		if math.IsNaN(energy) || math.IsInf(energy, 0) {
			energyStr = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(params, " "), energyStr)
	}

	return w.Flush()
}
