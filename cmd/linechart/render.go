package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/export"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <data>",
		Short: "Render a data file and write the chart outputs",
		Long: `render loads samples from a .json, .yaml or .xlsx file, sorts them by
date, draws the chart and writes every requested output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, args[0])
		},
	}

	f := cmd.Flags()
	f.String("svg", "", "Write the chart as SVG to this path")
	f.String("png", "", "Write the chart as PNG to this path")
	f.String("xlsx", "", "Write the data table as xlsx to this path")
	f.Bool("xlsx-chart", true, "Add a native line chart to the xlsx output")
	f.String("title", "", "Chart title for image exports")
	f.String("product", "", "Product name for image exports")
	f.StringSlice("filter", nil, "Active filter as key=value (repeatable)")
	return cmd
}

func (a *app) render(cmd *cobra.Command, path string) error {
	samples, err := a.load(path)
	if err != nil {
		return err
	}
	cfg, err := a.chartConfig()
	if err != nil {
		return err
	}

	surface := render.NewSVGSurface()
	h, err := linechart.Initialize(surface, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize chart: %w", err)
	}
	if err := h.Update(samples); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	outputs := map[string]func(io.Writer) error{}
	if p := a.v.GetString("svg"); p != "" {
		outputs[p] = func(w io.Writer) error {
			return export.WriteSVG(w, surface)
		}
	}
	if p := a.v.GetString("png"); p != "" {
		img := h.Image()
		outputs[p] = func(w io.Writer) error {
			return export.WriteImage(w, img.Frame, img.Metadata, export.DefaultImageOptions())
		}
	}
	if p := a.v.GetString("xlsx"); p != "" {
		opts := export.DefaultTableOptions()
		opts.Chart = a.v.GetBool("xlsx-chart")
		opts.ChartTitle = cfg.Title
		view := h.Table()
		outputs[p] = func(w io.Writer) error {
			return export.WriteTable(w, view, opts)
		}
	}

	if len(outputs) == 0 {
		_, err := surface.WriteTo(cmd.OutOrStdout())
		return err
	}

	var g errgroup.Group
	for p, write := range outputs {
		p, write := p, write
		g.Go(func() error {
			return a.writeFile(p, write)
		})
	}
	return g.Wait()
}

func (a *app) writeFile(path string, write func(io.Writer) error) error {
	f, err := a.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	a.logger.Info("wrote output", "path", path)
	return nil
}
