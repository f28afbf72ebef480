package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pyre/internal/analysis"
	"github.com/san-kum/pyre/internal/config"
	"github.com/san-kum/pyre/internal/engine"
	"github.com/san-kum/pyre/internal/fire"
	"github.com/san-kum/pyre/internal/gui"
	"github.com/san-kum/pyre/internal/palette"
	"github.com/san-kum/pyre/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	fps        int
	colorMode  string
	cooling    int
	spark      int
	seed       int64
	bufferKiB  int
	// windowed modes
	fireWidth  int
	fireHeight int
	scale      int
	cubeSize   int
	sound      bool
	// analysis
	frames   int
	warmup   int
	gridCols int
	gridRows int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pyre",
		Short: "doom-style fire in your terminal",
		RunE:  runTerminal,
	}
	addFireFlags(rootCmd)
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "color mode: auto, truecolor, 256")
	rootCmd.Flags().IntVar(&bufferKiB, "buffer", config.DefaultBufferKiB, "output buffer size (KiB)")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "render the fire in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addFireFlags(guiCmd)
	guiCmd.Flags().IntVar(&fireWidth, "width", config.DefaultFireWidth, "fire field width")
	guiCmd.Flags().IntVar(&fireHeight, "height", config.DefaultFireHeight, "fire field height")
	guiCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "pixel scale factor")
	guiCmd.Flags().BoolVar(&sound, "sound", false, "enable crackle synthesis")

	cubeCmd := &cobra.Command{
		Use:   "cube",
		Short: "wrap the fire around a tumbling cube",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return gui.RunCube(cfg)
		},
	}
	addFireFlags(cubeCmd)
	cubeCmd.Flags().IntVar(&cubeSize, "size", config.DefaultCubeSize, "fire texture size")
	cubeCmd.Flags().BoolVar(&sound, "sound", false, "enable crackle synthesis")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "portable terminal renderer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addFireFlags(tuiCmd)
	tuiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "print the fire palette",
		RunE:  showPalette,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "flicker frequency analysis of a headless run",
		RunE:  analyzeFire,
	}
	addFireFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&frames, "frames", 512, "frames to record")
	analyzeCmd.Flags().IntVar(&warmup, "warmup", 120, "frames to discard before recording")
	analyzeCmd.Flags().IntVar(&gridCols, "cols", 80, "field width")
	analyzeCmd.Flags().IntVar(&gridRows, "rows", 50, "field height")
	analyzeCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "sample rate in Hz")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark simulation throughput",
		RunE:  benchFire,
	}
	addFireFlags(benchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list fire presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fc := config.Presets[name]
				fmt.Printf("%-10s cooling=%d spark=%d%%\n", name, fc.CoolingMax, fc.SparkChance)
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, cubeCmd, tuiCmd, paletteCmd, analyzeCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addFireFlags registers the flags shared by every renderer.
func addFireFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "fire preset (see 'pyre presets')")
	cmd.Flags().IntVar(&cooling, "cooling", fire.DefaultCoolingMax, "max decay per propagation")
	cmd.Flags().IntVar(&spark, "spark", fire.DefaultSparkChance, "spark chance percent")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
}

// loadConfig merges, lowest priority first: defaults, preset, config
// file, then explicitly set CLI flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		fc := config.GetPreset(preset)
		if fc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Fire = *fc
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if preset == "" {
			cfg.Fire = loaded.Fire
		}
		cfg.Display = loaded.Display
		cfg.Window = loaded.Window
		cfg.Sound = loaded.Sound
		cfg.Seed = loaded.Seed
	}

	if cmd.Flags().Changed("cooling") {
		cfg.Fire.CoolingMax = cooling
	}
	if cmd.Flags().Changed("spark") {
		cfg.Fire.SparkChance = spark
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.FPS = fps
	}
	if cmd.Flags().Changed("color") {
		cfg.Display.Color = colorMode
	}
	if cmd.Flags().Changed("buffer") {
		cfg.Display.BufferKiB = bufferKiB
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.FireWidth = fireWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.FireHeight = fireHeight
	}
	if cmd.Flags().Changed("scale") {
		cfg.Window.Scale = scale
	}
	if cmd.Flags().Changed("size") {
		cfg.Window.CubeSize = cubeSize
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = sound
	}

	return cfg, nil
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	depth, err := cfg.ColorDepth()
	if err != nil {
		return err
	}

	engineCfg := engine.Config{
		FPS:        cfg.Display.FPS,
		Fire:       cfg.FireParams(),
		BufferSize: cfg.BufferSize(),
		Seed:       cfg.Seed,
	}
	if engineCfg.Seed == 0 {
		engineCfg.Seed = time.Now().UnixNano()
	}
	return engine.RunTerminal(engineCfg, depth)
}

func showPalette(cmd *cobra.Command, args []string) error {
	pal := palette.Generate()

	fmt.Println("truecolor ramp:")
	for row := 0; row < 8; row++ {
		var line string
		for col := 0; col < 32; col++ {
			c := pal.RGB[row*32+col]
			hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
			line += lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
		}
		fmt.Println(line)
	}

	fmt.Println("\nxterm-256 ramp:")
	for row := 0; row < 8; row++ {
		var line string
		for col := 0; col < 32; col++ {
			idx := pal.Indexed[row*32+col]
			color := lipgloss.Color(fmt.Sprintf("%d", idx))
			line += lipgloss.NewStyle().Background(color).Render("  ")
		}
		fmt.Println(line)
	}

	fmt.Println("\nanchors:")
	for _, i := range []int{0, 63, 64, 127, 128, 191, 192, 255} {
		c := pal.RGB[i]
		fmt.Printf("  %3d: rgb(%3d,%3d,%3d) xterm(%d)\n", i, c.R, c.G, c.B, pal.Indexed[i])
	}
	return nil
}

func analyzeFire(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	rngSeed := cfg.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	grid, err := fire.NewGrid(gridCols, gridRows, cfg.FireParams(), rand.New(rand.NewSource(rngSeed)))
	if err != nil {
		return err
	}

	fmt.Printf("recording %d frames of a %dx%d fire at %d Hz...\n\n", frames, gridCols, gridRows, fps)
	series := analysis.CollectMeanHeat(grid, frames, warmup)

	graph := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean heat per frame"),
	)
	fmt.Println(graph)
	fmt.Println()

	ps := analysis.PowerSpectrum(analysis.Detrend(series))
	plotData := ps[1:]
	if len(plotData) > len(ps)/2 {
		plotData = plotData[:len(ps)/2]
	}
	graph = asciigraph.Plot(plotData,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(series, float64(fps))
	fmt.Printf("dominant flicker: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func benchFire(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sizes := []struct{ w, h int }{
		{80, 24},
		{200, 50},
		{320, 200},
	}
	const steps = 2000

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tCELLS\tSTEPS\tTIME\tSTEPS/SEC")

	for _, size := range sizes {
		grid, err := fire.NewGrid(size.w, size.h, cfg.FireParams(), rand.New(rand.NewSource(42)))
		if err != nil {
			return err
		}

		start := time.Now()
		for i := 0; i < steps; i++ {
			grid.Step()
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%dx%d\t%d\t%d\t%v\t%.0f\n",
			size.w, size.h, size.w*size.h, steps, elapsed.Round(time.Millisecond),
			float64(steps)/elapsed.Seconds())
	}
	return w.Flush()
}
