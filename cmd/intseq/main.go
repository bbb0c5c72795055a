package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/intseq/internal/analysis"
	"github.com/san-kum/intseq/internal/boundary"
	"github.com/san-kum/intseq/internal/config"
	"github.com/san-kum/intseq/internal/export"
	"github.com/san-kum/intseq/internal/logging"
	"github.com/san-kum/intseq/internal/plot"
	"github.com/san-kum/intseq/internal/render"
	"github.com/san-kum/intseq/internal/schedule"
	"github.com/san-kum/intseq/internal/seq"
	"github.com/san-kum/intseq/internal/storage"
	"github.com/san-kum/intseq/internal/viz"
	"github.com/san-kum/intseq/internal/wave"
)

var (
	dataDir string
	verbose bool
	log     = zap.NewNop()

	// Sequence input
	seqFile string
	// Config file and preset name
	configFile string
	preset     string

	flagRender   = config.DefaultRender()
	flagWave     = config.DefaultConfig().Wave
	flagSchedule = schedule.DefaultOptions()
	flagPlot     = plot.DefaultOptions()

	waveType  string
	sortOrder string

	renderOut string
	plotOut   string
	svgPath   string
	saveRun   bool
	preview   int
	braille   bool
	wavPath   string
	wavPitch  float64
	wavLength time.Duration
	lag       int
	outDir    string
	asJSON    bool
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// main registers the commands and exits with status 1 when one fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "intseq",
		Short: "turn integer sequences into images",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetPreset("rule30")
			s, err := seq.Parse(cfg.Sequence)
			if err != nil {
				return err
			}
			rc, err := cfg.Render.ToRender()
			if err != nil {
				return err
			}
			return viz.Run(s, rc)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".intseq", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render [values...]",
		Short: "render a sequence to an image",
		RunE:  renderSequence,
	}
	addSourceFlags(renderCmd)
	addRenderFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "intseq.png", "output image (.png, .bmp, .tif)")
	renderCmd.Flags().StringVar(&svgPath, "svg", "", "also write path strokes as svg")
	renderCmd.Flags().BoolVar(&saveRun, "save", false, "record the run in the data directory")
	renderCmd.Flags().IntVar(&preview, "preview", 0, "print a terminal preview this many columns wide")
	renderCmd.Flags().BoolVar(&braille, "braille", false, "use a monochrome braille preview")

	waveCmd := &cobra.Command{
		Use:   "wave",
		Short: "synthesize a periodic sequence",
		RunE:  generateWave,
	}
	addSourceFlags(waveCmd)
	addWaveFlags(waveCmd)
	waveCmd.Flags().StringVar(&wavPath, "wav", "", "write the table as audio")
	waveCmd.Flags().Float64Var(&wavPitch, "pitch", 220, "playback frequency in hz")
	waveCmd.Flags().DurationVar(&wavLength, "duration", 2*time.Second, "audio length")

	scheduleCmd := &cobra.Command{
		Use:   "schedule [values...]",
		Short: "rescale a sequence into a noise schedule",
		RunE:  mapSchedule,
	}
	addSourceFlags(scheduleCmd)
	scheduleCmd.Flags().IntVar(&flagSchedule.Count, "count", 0, "use the first n values (0 for all)")
	scheduleCmd.Flags().Float64Var(&flagSchedule.NewMin, "min", flagSchedule.NewMin, "new minimum")
	scheduleCmd.Flags().Float64Var(&flagSchedule.NewMax, "max", flagSchedule.NewMax, "new maximum")
	scheduleCmd.Flags().BoolVar(&flagSchedule.Reverse, "reverse", flagSchedule.Reverse, "reverse after sorting")
	scheduleCmd.Flags().StringVar(&sortOrder, "sort", schedule.NoSort.String(), "no sort, highest to lowest, lowest to highest")

	plotCmd := &cobra.Command{
		Use:   "plot [values...]",
		Short: "plot a sequence",
		RunE:  plotSequence,
	}
	addSourceFlags(plotCmd)
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "", "write a png instead of printing")
	plotCmd.Flags().StringVar(&flagPlot.Title, "title", flagPlot.Title, "chart title")
	plotCmd.Flags().StringVar(&flagPlot.XLabel, "xlabel", flagPlot.XLabel, "x axis label")
	plotCmd.Flags().StringVar(&flagPlot.YLabel, "ylabel", flagPlot.YLabel, "y axis label")
	plotCmd.Flags().IntVar(&flagPlot.Width, "width", flagPlot.Width, "image width")
	plotCmd.Flags().IntVar(&flagPlot.Height, "height", flagPlot.Height, "image height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [values...]",
		Short: "spectrum and return map of a sequence",
		RunE:  analyzeSequence,
	}
	addSourceFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&lag, "lag", 1, "return map lag")
	analyzeCmd.Flags().StringVar(&svgPath, "svg", "", "write the return map as svg")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print the run as json")
	showCmd.Flags().IntVar(&preview, "preview", 0, "print the stored image this many columns wide")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODE\tSIZE\tBOUNDARY\tSOURCE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				source := "sequence"
				if p.UsesWave() {
					source = "wave:" + p.Wave.Type.String()
				}
				fmt.Fprintf(w, "%s\t%s\t%dx%d\t%s\t%s\n",
					name, p.Render.Mode, p.Render.Width, p.Render.Height, p.Render.Boundary, source)
			}
			return w.Flush()
		},
	}

	batchCmd := &cobra.Command{
		Use:   "batch [preset...]",
		Short: "render presets concurrently",
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "out-dir", "", "also write <preset>.png files here")

	viewCmd := &cobra.Command{
		Use:   "view [values...]",
		Short: "interactive terminal viewer",
		RunE:  viewSequence,
	}
	addSourceFlags(viewCmd)
	addRenderFlags(viewCmd)

	rootCmd.AddCommand(renderCmd, waveCmd, scheduleCmd, plotCmd, analyzeCmd, listCmd, showCmd, presetsCmd, batchCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&seqFile, "file", "f", "", "read values from a file (- for stdin)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&flagRender.Width, "width", flagRender.Width, "image width")
	f.IntVar(&flagRender.Height, "height", flagRender.Height, "image height")
	f.StringVarP(&flagRender.Mode, "mode", "m", flagRender.Mode, "RGB, angle and length, run and turn, meander, cellular_automaton")
	f.IntVar(&flagRender.Rule, "rule", flagRender.Rule, "automaton rule (0-255)")
	f.Float64Var(&flagRender.ColorOffset, "offset", flagRender.ColorOffset, "green/blue channel offset (0-1)")
	f.Float64Var(&flagRender.Colors.ValueMin, "value-min", flagRender.Colors.ValueMin, "lowest mapped value (-1 for 0)")
	f.Float64Var(&flagRender.Colors.ValueMax, "value-max", flagRender.Colors.ValueMax, "highest mapped value (-1 for 255)")
	f.Float64Var(&flagRender.Colors.RedMin, "red-min", flagRender.Colors.RedMin, "red floor (-1 for value-min)")
	f.Float64Var(&flagRender.Colors.RedMax, "red-max", flagRender.Colors.RedMax, "red ceiling (-1 for value-max)")
	f.Float64Var(&flagRender.Colors.GreenMin, "green-min", flagRender.Colors.GreenMin, "green floor (-1 for value-min)")
	f.Float64Var(&flagRender.Colors.GreenMax, "green-max", flagRender.Colors.GreenMax, "green ceiling (-1 for value-max)")
	f.Float64Var(&flagRender.Colors.BlueMin, "blue-min", flagRender.Colors.BlueMin, "blue floor (-1 for value-min)")
	f.Float64Var(&flagRender.Colors.BlueMax, "blue-max", flagRender.Colors.BlueMax, "blue ceiling (-1 for value-max)")
	f.Float64Var(&flagRender.AngleScale, "angle-scale", flagRender.AngleScale, "turn multiplier")
	f.Float64Var(&flagRender.LengthScale, "length-scale", flagRender.LengthScale, "step length multiplier")
	f.IntVar(&flagRender.LineWidth, "line-width", flagRender.LineWidth, "stroke width")
	f.Float64Var(&flagRender.StartX, "start-x", flagRender.StartX, "starting x")
	f.Float64Var(&flagRender.StartY, "start-y", flagRender.StartY, "starting y")
	f.StringVar(&flagRender.Boundary, "boundary", flagRender.Boundary, strings.Join(boundary.Names(), ", "))
}

func addWaveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&waveType, "type", "t", flagWave.Type.String(), strings.Join(wave.Types(), ", "))
	f.IntVar(&flagWave.Length, "length", flagWave.Length, "number of samples")
	f.Float64Var(&flagWave.Amplitude, "amplitude", flagWave.Amplitude, "peak amplitude")
	f.Float64Var(&flagWave.Frequency, "frequency", flagWave.Frequency, "periods per table")
	f.Float64Var(&flagWave.Phase, "phase", flagWave.Phase, "phase offset in degrees")
	f.Float64Var(&flagWave.VerticalOffset, "vertical-offset", flagWave.VerticalOffset, "added to every sample")
	f.Float64Var(&flagWave.Slope, "slope", flagWave.Slope, "sigmoid steepness")
	f.Float64Var(&flagWave.DutyCycle, "duty", flagWave.DutyCycle, "sawtooth, triangle and square duty cycle")
}

// loadConfig layers the preset, then the config file, then changed flags.
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

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if f.Lookup(name) != nil && f.Changed(name) {
			apply()
		}
	}
	// plot reuses width and height for the chart size
	if cmd.Name() != "plot" {
		applyRenderFlags(&cfg.Render, set)
	}

	var typeErr error
	set("type", func() {
		t, err := wave.ParseType(waveType)
		cfg.Wave.Type, typeErr = t, err
	})
	if typeErr != nil {
		return nil, typeErr
	}
	set("length", func() { cfg.Wave.Length = flagWave.Length })
	set("amplitude", func() { cfg.Wave.Amplitude = flagWave.Amplitude })
	set("frequency", func() { cfg.Wave.Frequency = flagWave.Frequency })
	set("phase", func() { cfg.Wave.Phase = flagWave.Phase })
	set("vertical-offset", func() { cfg.Wave.VerticalOffset = flagWave.VerticalOffset })
	set("slope", func() { cfg.Wave.Slope = flagWave.Slope })
	set("duty", func() { cfg.Wave.DutyCycle = flagWave.DutyCycle })

	var sortErr error
	set("sort", func() {
		o, err := schedule.ParseSortOrder(sortOrder)
		cfg.Schedule.Sort, sortErr = o, err
	})
	if sortErr != nil {
		return nil, sortErr
	}
	set("count", func() { cfg.Schedule.Count = flagSchedule.Count })
	set("min", func() { cfg.Schedule.NewMin = flagSchedule.NewMin })
	set("max", func() { cfg.Schedule.NewMax = flagSchedule.NewMax })
	set("reverse", func() { cfg.Schedule.Reverse = flagSchedule.Reverse })

	set("title", func() { cfg.Plot.Title = flagPlot.Title })
	set("xlabel", func() { cfg.Plot.XLabel = flagPlot.XLabel })
	set("ylabel", func() { cfg.Plot.YLabel = flagPlot.YLabel })
	if cmd.Name() == "plot" {
		set("width", func() { cfg.Plot.Width = flagPlot.Width })
		set("height", func() { cfg.Plot.Height = flagPlot.Height })
	}

	return cfg, nil
}

func applyRenderFlags(r *config.RenderConfig, set func(string, func())) {
	set("width", func() { r.Width = flagRender.Width })
	set("height", func() { r.Height = flagRender.Height })
	set("mode", func() { r.Mode = flagRender.Mode })
	set("rule", func() { r.Rule = flagRender.Rule })
	set("offset", func() { r.ColorOffset = flagRender.ColorOffset })
	set("value-min", func() { r.Colors.ValueMin = flagRender.Colors.ValueMin })
	set("value-max", func() { r.Colors.ValueMax = flagRender.Colors.ValueMax })
	set("red-min", func() { r.Colors.RedMin = flagRender.Colors.RedMin })
	set("red-max", func() { r.Colors.RedMax = flagRender.Colors.RedMax })
	set("green-min", func() { r.Colors.GreenMin = flagRender.Colors.GreenMin })
	set("green-max", func() { r.Colors.GreenMax = flagRender.Colors.GreenMax })
	set("blue-min", func() { r.Colors.BlueMin = flagRender.Colors.BlueMin })
	set("blue-max", func() { r.Colors.BlueMax = flagRender.Colors.BlueMax })
	set("angle-scale", func() { r.AngleScale = flagRender.AngleScale })
	set("length-scale", func() { r.LengthScale = flagRender.LengthScale })
	set("line-width", func() { r.LineWidth = flagRender.LineWidth })
	set("start-x", func() { r.StartX = flagRender.StartX })
	set("start-y", func() { r.StartY = flagRender.StartY })
	set("boundary", func() { r.Boundary = flagRender.Boundary })
}

// readSequence picks the first available source: arguments, --file, the
// config's literal sequence, then the config's wave.
func readSequence(args []string, cfg *config.Config) (seq.Sequence, string, error) {
	if len(args) > 0 {
		s, err := seq.ParseNamed("args", strings.Join(args, ","))
		return s, "args", err
	}
	if seqFile != "" {
		var data []byte
		var err error
		if seqFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(seqFile)
		}
		if err != nil {
			return nil, "", err
		}
		text := strings.NewReplacer("\r\n", ",", "\n", ",").Replace(string(data))
		s, err := seq.ParseNamed(seqFile, text)
		return s, "file:" + seqFile, err
	}
	if !cfg.UsesWave() {
		s, err := seq.ParseNamed("config", cfg.Sequence)
		return s, "config", err
	}
	s, sanitized, err := wave.Generate(cfg.Wave)
	if err != nil {
		return nil, "", err
	}
	if sanitized > 0 {
		log.Warn("replaced undefined wave samples with 0", zap.Int("count", sanitized))
	}
	return s, "wave:" + cfg.Wave.Type.String(), nil
}

func renderSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, source, err := readSequence(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	rc, err := cfg.Render.ToRender()
	if err != nil {
		return fmt.Errorf("invalid render config: %w", err)
	}

	start := time.Now()
	canvas, err := render.Render(s, rc)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Debug("rendered",
		zap.String("mode", rc.Mode.String()),
		zap.Int("values", len(s)),
		zap.Int("strokes", len(canvas.Strokes())),
		zap.Duration("elapsed", elapsed))

	if err := export.WriteImage(renderOut, canvas.Image()); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	if svgPath != "" {
		if !rc.Mode.Paths() {
			fmt.Println(warnStyle.Render("svg output only records vector walk modes"))
		}
		svg := export.StrokesToSVG(canvas.Strokes(), canvas.Width(), canvas.Height())
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return fmt.Errorf("failed to write svg: %w", err)
		}
	}

	printField("mode", rc.Mode.String())
	printField("values", fmt.Sprintf("%d (%s)", len(s), source))
	printField("size", fmt.Sprintf("%dx%d", rc.Width, rc.Height))
	printField("time", elapsed.String())
	printField("image", renderOut)

	if saveRun {
		st := storage.New(dataDir, log)
		runID, err := st.Save(storage.RunMetadata{
			Source: source,
			Render: cfg.Render,
			Stats:  statsMap(analysis.Summarize(s)),
		}, s, canvas.Image())
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		printField("run id", runID)
	}

	if preview > 0 {
		fmt.Println()
		if braille {
			fmt.Print(viz.Braille(canvas.Image(), preview, 0.1))
		} else {
			fmt.Print(viz.HalfBlock(canvas.Image(), preview))
		}
	}
	return nil
}

func generateWave(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, sanitized, err := wave.Generate(cfg.Wave)
	if err != nil {
		return err
	}
	if sanitized > 0 {
		log.Warn("replaced undefined wave samples with 0", zap.Int("count", sanitized))
	}
	fmt.Println(seq.Format(s))

	if wavPath != "" {
		f, err := os.Create(wavPath)
		if err != nil {
			return err
		}
		opts := wave.AudioOptions{Frequency: wavPitch, Duration: wavLength, Rate: wave.DefaultSampleRate}
		if err := wave.WriteWAV(f, s, opts); err != nil {
			f.Close()
			return fmt.Errorf("failed to write wav: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.Info("wrote audio", zap.String("path", wavPath), zap.Duration("duration", wavLength))
	}
	return nil
}

func mapSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, _, err := readSequence(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	if len(s) == 0 {
		log.Warn("input sequence is empty")
	}
	out, err := schedule.Map(s, cfg.Schedule)
	if err != nil {
		return err
	}
	fmt.Println(seq.Format(out))
	return nil
}

func plotSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, _, err := readSequence(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}

	if plotOut == "" {
		printASCIIPlot(os.Stdout, s, cfg.Plot.Title)
		return nil
	}

	img, err := plot.Chart(s, cfg.Plot)
	if err != nil {
		return err
	}
	if err := export.WriteImage(plotOut, img); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	printField("plot", plotOut)
	return nil
}

// printASCIIPlot writes the terminal chart of s. An empty sequence has no
// chart and only logs a warning.
func printASCIIPlot(w io.Writer, s seq.Sequence, title string) {
	if len(s) == 0 {
		log.Warn("input sequence is empty, nothing to plot")
		return
	}
	fmt.Fprintln(w, plot.ASCII(s, plot.Options{Title: title, Width: 80, Height: 15}))
}

func analyzeSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, source, err := readSequence(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	if len(s) == 0 {
		return fmt.Errorf("no data")
	}

	sum := analysis.Summarize(s)
	fmt.Printf("sequence analysis: %s\n\n", source)
	printField("count", fmt.Sprintf("%d (%d distinct)", sum.Count, sum.Distinct))
	printField("range", fmt.Sprintf("%g .. %g", sum.Min, sum.Max))
	printField("mean", fmt.Sprintf("%.4f", sum.Mean))
	printField("stddev", fmt.Sprintf("%.4f", sum.StdDev))

	sp := analysis.PowerSpectrum(s)
	if len(sp.Power) > 2 {
		fmt.Println()
		graph := asciigraph.Plot(sp.Power[1:],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (dc removed)"),
		)
		fmt.Println(graph)
	}
	if peak, ok := sp.Dominant(); ok {
		fmt.Println()
		printField("dominant", fmt.Sprintf("%.3f cycles per sequence", peak.Cycles))
		printField("period", fmt.Sprintf("%.2f terms", float64(len(s))/peak.Cycles))
	}

	rm := analysis.NewReturnMap(s, lag)
	if rm != nil {
		fmt.Printf("\nreturn map (lag %d):\n", lag)
		fmt.Print(rm.ASCII(60, 20))
		if svgPath != "" {
			svg := export.ReturnMapToSVG(rm, 400, 400, "#00ff88")
			if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
				return fmt.Errorf("failed to write svg: %w", err)
			}
		}
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir, log)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tTIME\tVALUES\tSIZE\tBOUNDARY\tSOURCE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%dx%d\t%s\t%s\n",
			run.ID,
			run.Render.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Length,
			run.Render.Width,
			run.Render.Height,
			run.Render.Boundary,
			run.Source,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	st := storage.New(dataDir, log)

	if asJSON {
		return st.Export(os.Stdout, runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	s, err := st.LoadSequence(runID)
	if err != nil {
		return err
	}

	printField("run", meta.ID)
	printField("mode", meta.Render.Mode)
	printField("time", meta.Timestamp.Format(time.RFC3339))
	printField("source", meta.Source)
	printField("size", fmt.Sprintf("%dx%d", meta.Render.Width, meta.Render.Height))
	for _, k := range []string{"min", "max", "mean", "stddev"} {
		if v, ok := meta.Stats[k]; ok {
			printField(k, fmt.Sprintf("%.4f", v))
		}
	}

	if len(s) > 0 {
		fmt.Println()
		fmt.Println(plot.ASCII(s, plot.Options{Title: "values", Width: 80, Height: 10}))
	}

	if preview > 0 {
		img, err := st.LoadImage(runID)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(viz.HalfBlock(img, preview))
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	jobs := make([]render.Job, 0, len(names))
	metas := make(map[string]storage.RunMetadata, len(names))
	for _, name := range names {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		s, source, err := readSequence(nil, cfg)
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		rc, err := cfg.Render.ToRender()
		if err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
		jobs = append(jobs, render.Job{Name: name, Seq: s, Config: rc})
		metas[name] = storage.RunMetadata{
			Source: "preset:" + name + " " + source,
			Render: cfg.Render,
			Stats:  statsMap(analysis.Summarize(s)),
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results := render.RenderAll(ctx, jobs)
	log.Debug("batch rendered", zap.Int("jobs", len(jobs)), zap.Duration("elapsed", time.Since(start)))

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	st := storage.New(dataDir, log)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tRUN\tSTATUS")

	failed := 0
	for i, r := range results {
		if r.Err != nil {
			failed++
			log.Error("render failed", zap.String("preset", r.Name), zap.Error(r.Err))
			fmt.Fprintf(w, "%s\t-\t%v\n", r.Name, r.Err)
			continue
		}
		runID, err := st.Save(metas[r.Name], jobs[i].Seq, r.Canvas.Image())
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", r.Name, err)
		}
		if outDir != "" {
			if err := export.WriteImage(filepath.Join(outDir, r.Name+".png"), r.Canvas.Image()); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "%s\t%s\tok\n", r.Name, runID)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d renders failed", failed, len(results))
	}
	return nil
}

func viewSequence(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, _, err := readSequence(args, cfg)
	if err != nil {
		return fmt.Errorf("failed to read sequence: %w", err)
	}
	rc, err := cfg.Render.ToRender()
	if err != nil {
		return fmt.Errorf("invalid render config: %w", err)
	}
	return viz.Run(s, rc)
}

func statsMap(sum analysis.Summary) map[string]float64 {
	if sum.Count == 0 {
		return nil
	}
	return map[string]float64{
		"min":    sum.Min,
		"max":    sum.Max,
		"mean":   sum.Mean,
		"stddev": sum.StdDev,
	}
}

func printField(name, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", name)), valueStyle.Render(value))
}
