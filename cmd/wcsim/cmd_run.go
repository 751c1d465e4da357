package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"wilson-ca/internal/export"
	"wilson-ca/internal/logging"
	"wilson-ca/internal/sims/wilsoncowan"
	"wilson-ca/pkg/core"
)

type runReport struct {
	ID      string             `json:"id"`
	Config  wilsoncowan.Config `json:"config"`
	Stats   wilsoncowan.Stats  `json:"stats"`
	Outputs []string           `json:"outputs"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a medium and export its history",
		Long: `Run simulates the medium for the configured number of steps and writes
an animated GIF of every frame. Without --gif, --avi or --chart the GIF
goes to wcsim_<run id>.gif in the working directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadModelConfig(cmd)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			stimuli, _ := f.GetStringArray("stimulate")
			gifPath, _ := f.GetString("gif")
			aviPath, _ := f.GetString("avi")
			chartPath, _ := f.GetString("chart")
			scale, _ := f.GetInt("scale")
			fps, _ := f.GetInt("fps")
			noExport, _ := f.GetBool("no-export")
			jsonOut, _ := f.GetBool("json")

			id := xid.New().String()
			log := newLogger(cmd).With("run", id)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sim, err := wilsoncowan.New(cfg, core.NewRNG(cfg.Seed),
				wilsoncowan.WithLogger(log),
				wilsoncowan.WithProgress(func(step, total int) {
					log.Log(ctx, logging.LevelTrace, "step committed", "step", step, "total", total)
				}),
			)
			if err != nil {
				return err
			}
			for _, s := range stimuli {
				pos, err := parsePosition(s)
				if err != nil {
					return err
				}
				if !cfg.Shape().Contains(pos) {
					return fmt.Errorf("stimulus %s outside %dx%d grid", pos, cfg.Rows, cfg.Cols)
				}
				if err := sim.Grid().Stimulate(pos.Row, pos.Col); err != nil {
					return err
				}
			}

			hist, err := sim.Run(ctx)
			if err != nil {
				return err
			}

			report := runReport{ID: id, Config: cfg, Stats: wilsoncowan.Summarize(hist)}
			if !noExport {
				if gifPath == "" && aviPath == "" && chartPath == "" {
					gifPath = "wcsim_" + id + ".gif"
				}
				frame := export.DefaultGIFOptions().Frame
				if scale > 0 {
					frame.Scale = scale
				}
				if gifPath != "" {
					opt := export.GIFOptions{Frame: frame, Delay: 100 / max(fps, 1)}
					if err := writeAtomic(gifPath, func(tmp string) error {
						return export.WriteGIFFile(tmp, hist, opt)
					}); err != nil {
						return err
					}
					report.Outputs = append(report.Outputs, gifPath)
				}
				if aviPath != "" {
					opt := export.DefaultAVIOptions()
					opt.Frame = frame
					opt.FPS = fps
					if err := writeAtomic(aviPath, func(tmp string) error {
						return export.WriteAVI(tmp, hist, opt)
					}); err != nil {
						return err
					}
					report.Outputs = append(report.Outputs, aviPath)
				}
				if chartPath != "" {
					if err := writeAtomic(chartPath, func(tmp string) error {
						return export.WriteChartFile(tmp, hist, export.DefaultChartOptions())
					}); err != nil {
						return err
					}
					report.Outputs = append(report.Outputs, chartPath)
				}
				log.Info("exports written", "files", len(report.Outputs))
			}

			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
			}
			return printReport(cmd.OutOrStdout(), report)
		},
	}

	addModelFlags(cmd)
	cmd.Flags().StringArray("stimulate", nil, "Force ROW,COL to fire at step 0 (repeatable)")
	cmd.Flags().String("gif", "", "Write an animated GIF to this path")
	cmd.Flags().String("avi", "", "Write an MJPEG AVI to this path")
	cmd.Flags().String("chart", "", "Write a PNG activity chart to this path")
	cmd.Flags().Int("scale", 0, "Pixels per cell in exported frames (0 = default)")
	cmd.Flags().Int("fps", 10, "Frames per second for GIF and AVI output")
	cmd.Flags().Bool("no-export", false, "Skip all file output")
	return cmd
}

// writeAtomic lets write produce path+".tmp" and renames it into place. The
// temporary file is removed on exit if the rename never happened.
func writeAtomic(path string, write func(tmp string) error) error {
	tmp := path + ".tmp"
	atexit.Register(func() { os.Remove(tmp) })
	if err := write(tmp); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}

// parsePosition reads "row,col".
func parsePosition(s string) (wilsoncowan.Position, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return wilsoncowan.Position{}, fmt.Errorf("position %q: want ROW,COL", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return wilsoncowan.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return wilsoncowan.Position{}, fmt.Errorf("position %q: %w", s, err)
	}
	return wilsoncowan.Position{Row: row, Col: col}, nil
}

func printReport(w io.Writer, r runReport) error {
	c, st := r.Config, r.Stats
	lines := []string{
		fmt.Sprintf("run        %s", r.ID),
		fmt.Sprintf("grid       %dx%d radius=%g threshold=%d refractory=%d rate=%g seed=%d",
			c.Rows, c.Cols, c.ConnectivityRadius, c.Threshold, c.RefractoryPeriod, c.SpontaneousRate, c.Seed),
		fmt.Sprintf("steps      %d", st.Steps),
		fmt.Sprintf("mean       %.4f", st.MeanActivity),
		fmt.Sprintf("peak       %d at step %d", st.PeakActive, st.PeakStep),
		fmt.Sprintf("silent     %d", st.SilentSteps),
		fmt.Sprintf("branching  %.3f", st.BranchingRatio),
	}
	for _, out := range r.Outputs {
		lines = append(lines, "wrote      "+out)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
