package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/linechart-go/pkg/linechart"
	"github.com/ukaji3/linechart-go/pkg/linechart/models"
	"github.com/ukaji3/linechart-go/pkg/linechart/render"
	"github.com/ukaji3/linechart-go/pkg/linechart/tooltip"
)

// inspection is the JSON printed by inspect.
type inspection struct {
	models.TooltipState
	// Display is the value as shown in the tooltip.
	Display string `json:"display"`
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <data>",
		Short: "Print the tooltip shown when hovering at an x position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.inspect(cmd, args[0])
		},
	}
	cmd.Flags().Float64("x", 0, "Pointer x position in plot pixels")
	cmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	return cmd
}

func (a *app) inspect(cmd *cobra.Command, path string) error {
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

	ev := render.PointerEvent{X: a.v.GetFloat64("x")}
	surface.Dispatch(render.PointerEnter, ev)
	surface.Dispatch(render.PointerMove, ev)

	st := h.Tooltip()
	out := inspection{TooltipState: st}
	if st.Title != "" {
		out.Display = tooltip.FormatValue(st.Value)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if a.v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
