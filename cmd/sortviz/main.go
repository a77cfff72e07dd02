package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	envFile    string
	preset     string
	bars       int
	delayMS    int
	seed       int64
	algorithm  string
	theme      string
	logFile    string
	logLevel   string
	format     string
	maxN       int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the sortviz commands. With no subcommand it opens the
// interactive visualizer.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "sorting algorithm visualizer",
		SilenceUsage: true,
		RunE:         runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file with SORTVIZ_* overrides")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&bars, "bars", config.DefaultBars, "number of bars")
	pf.IntVar(&delayMS, "delay", config.DefaultDelayMS, "milliseconds between steps")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&algorithm, "algorithm", "", "preselected algorithm")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "theme: "+strings.Join(viz.ThemeNames(), ", "))
	pf.StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "play a sort headless, printing each instruction as it is applied",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}

	traceCmd := &cobra.Command{
		Use:   "trace [algorithm]",
		Short: "print the trace of sorting a random sequence",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "compare step counts across algorithms",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&maxN, "max-n", 40, "largest sequence length to plot")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range sorting.NewRegistry().Ordered() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", a.Name, a.Label)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBARS\tDELAY\tRANGE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%v\t%d-%d\n", name, p.Bars, p.Delay(), p.MinValue, p.MaxValue)
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, traceCmd, statsCmd, algorithmsCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file, environment and changed
// flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
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

	if err := cfg.ApplyEnv(envFile); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("bars") {
		cfg.Bars = bars
	}
	if flags.Changed("delay") {
		cfg.DelayMS = delayMS
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("starting", zap.Int("bars", cfg.Bars), zap.Int64("seed", cfg.Seed))
	return viz.Run(cfg, log)
}

// printSurface prints every instruction before forwarding it to the bars.
type printSurface struct {
	out   io.Writer
	bars  playback.Bars
	start time.Time
	now   func() time.Time
}

func (p *printSurface) stamp() string {
	return fmt.Sprintf("%8.3fs", p.now().Sub(p.start).Seconds())
}

func (p *printSurface) SwapHeights(i, j int) {
	fmt.Fprintf(p.out, "%s  swap      %3d %3d\n", p.stamp(), i, j)
	p.bars.SwapHeights(i, j)
}

func (p *printSurface) SetHeight(i, v int) {
	fmt.Fprintf(p.out, "%s  set       %3d = %d\n", p.stamp(), i, v)
	p.bars.SetHeight(i, v)
}

func (p *printSurface) Paint(i int, color string) {
	fmt.Fprintf(p.out, "%s  paint     %3d %s\n", p.stamp(), i, color)
	p.bars.Paint(i, color)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	alg, err := sorting.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}

	seq := trace.Random(rand.New(rand.NewSource(cfg.Seed)), cfg.Bars, cfg.MinValue, cfg.MaxValue)
	tr := alg.Generate(seq)
	palette := viz.PaletteFor(alg.Name)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s on %d bars (seed %d), %d steps\n", alg.Label, len(seq), cfg.Seed, len(tr))
	fmt.Fprintf(out, "input:  %v\n\n", []int(seq))

	sched := playback.New(playback.Config{
		Delay:  cfg.Delay(),
		Flash:  cfg.Flash(),
		Settle: cfg.Settle(),
	}, log.Named("playback"))

	start := time.Now()
	surface := &printSurface{out: out, bars: playback.NewBars(seq, palette.Normal), start: start, now: time.Now}

	ticker := time.NewTicker(cfg.Delay() / 2)
	defer ticker.Stop()

	sched.Start(start, tr, surface, palette)
	sched.Run(ticker.C)

	fmt.Fprintf(out, "\noutput: %v\n", surface.bars.Heights())
	fmt.Fprintf(out, "completed in %v\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	alg, err := sorting.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}

	seq := trace.Random(rand.New(rand.NewSource(cfg.Seed)), cfg.Bars, cfg.MinValue, cfg.MaxValue)
	tr := alg.Generate(seq)

	switch format {
	case "json":
		data, err := trace.NewExport(alg.Name, cfg.Seed, seq, tr)
		if err != nil {
			return err
		}
		return trace.WriteJSON(cmd.OutOrStdout(), data)
	case "csv":
		return trace.WriteCSV(cmd.OutOrStdout(), tr)
	default:
		return fmt.Errorf("unknown format: %s (json or csv)", format)
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if maxN < 2 || maxN > config.MaxBars {
		return fmt.Errorf("max-n must be in 2..%d, got %d", config.MaxBars, maxN)
	}

	algorithms := sorting.NewRegistry().Ordered()
	rng := rand.New(rand.NewSource(cfg.Seed))
	seq := trace.Random(rng, cfg.Bars, cfg.MinValue, cfg.MaxValue)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "step counts on %d bars (seed %d)\n\n", len(seq), cfg.Seed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tCOMPARES\tSWAPS\tOVERWRITES\tTOTAL\tPLAYBACK")
	for _, a := range algorithms {
		c := trace.CountSteps(a.Generate(seq))
		playTime := time.Duration(c.Total()) * cfg.Delay()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%v\n", a.Label, c.Compares, c.Swaps, c.Overwrites, c.Total(), playTime)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	series := make([][]float64, len(algorithms))
	for n := 2; n <= maxN; n++ {
		sample := trace.Random(rng, n, cfg.MinValue, cfg.MaxValue)
		for i, a := range algorithms {
			series[i] = append(series[i], float64(len(a.Generate(sample))))
		}
	}

	colors := []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Purple, asciigraph.Red, asciigraph.Green}
	legends := make([]string, len(algorithms))
	for i, a := range algorithms {
		legends[i] = a.Label
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors[:len(series)]...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("total steps vs n (2..%d)", maxN)),
	))
	return nil
}
