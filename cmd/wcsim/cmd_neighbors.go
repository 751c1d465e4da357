package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"wilson-ca/internal/sims/wilsoncowan"
)

type neighborsReport struct {
	Origin   wilsoncowan.Position   `json:"origin"`
	Direct   []wilsoncowan.Position `json:"direct"`
	Diagonal []wilsoncowan.Position `json:"diagonal"`
}

func newNeighborsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbors",
		Short: "Show the neighbourhood of one cell",
		Long: `Neighbors prints the direct and diagonal neighbours of a cell for a
given grid shape and connectivity radius, followed by a map where @ is the
cell, + a direct neighbour and x a diagonal neighbour.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			rows, _ := f.GetInt("rows")
			cols, _ := f.GetInt("cols")
			row, _ := f.GetInt("row")
			col, _ := f.GetInt("col")
			radius, _ := f.GetFloat64("radius")
			jsonOut, _ := f.GetBool("json")

			shape := wilsoncowan.Shape{Rows: rows, Cols: cols}
			if rows <= 0 || cols <= 0 {
				return fmt.Errorf("grid must be at least 1x1, got %dx%d", rows, cols)
			}
			if radius <= 0 {
				return fmt.Errorf("radius must be positive, got %g", radius)
			}
			origin := wilsoncowan.Position{Row: row, Col: col}
			if !shape.Contains(origin) {
				return &wilsoncowan.BoundsError{Origin: origin, Position: origin, Shape: shape}
			}

			report := neighborsReport{
				Origin:   origin,
				Direct:   wilsoncowan.DirectNeighbors(origin, radius, shape),
				Diagonal: wilsoncowan.DiagonalNeighbors(origin, radius, shape),
			}
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(report)
			}
			return printNeighbors(cmd.OutOrStdout(), shape, report)
		},
	}

	def := wilsoncowan.DefaultConfig()
	cmd.Flags().Int("rows", def.Rows, "Grid rows")
	cmd.Flags().Int("cols", def.Cols, "Grid columns")
	cmd.Flags().Int("row", def.Rows/2, "Cell row")
	cmd.Flags().Int("col", def.Cols/2, "Cell column")
	cmd.Flags().Float64("radius", def.ConnectivityRadius, "Connectivity radius")
	return cmd
}

func printNeighbors(w io.Writer, shape wilsoncowan.Shape, r neighborsReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "direct:   %s\n", joinPositions(r.Direct))
	fmt.Fprintf(&b, "diagonal: %s\n", joinPositions(r.Diagonal))

	marks := make([]byte, shape.Len())
	for i := range marks {
		marks[i] = '.'
	}
	for _, p := range r.Diagonal {
		marks[shape.Index(p)] = 'x'
	}
	for _, p := range r.Direct {
		marks[shape.Index(p)] = '+'
	}
	marks[shape.Index(r.Origin)] = '@'
	for row := 0; row < shape.Rows; row++ {
		b.Write(marks[row*shape.Cols : (row+1)*shape.Cols])
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinPositions(ps []wilsoncowan.Position) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
