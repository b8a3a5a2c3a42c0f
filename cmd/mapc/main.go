package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/johnpooch/boardmap"
	"github.com/johnpooch/boardmap/model"
	"github.com/johnpooch/boardmap/pathdata"
	"github.com/johnpooch/boardmap/preview"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mapc",
		Short: "Board map compiler",
		Long: `mapc compiles hand-authored SVG board documents into the canonical
map model consumed by the board renderer.

The compiled asset is written once at build time and loaded at application
start, so boards are never re-parsed per load.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log compiler diagnostics to stderr")
	rootCmd.PersistentFlags().String("impassable-fill", "", "Fill value marking impassable terrain (default url(#impassableStripes))")
	rootCmd.PersistentFlags().String("background-rect", "", "Id of the element sizing the canvas (default background-rect)")

	rootCmd.AddCommand(compileCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(previewCmd())

	return rootCmd
}

// compilerFor builds a compiler from the persistent flags.
func compilerFor(cmd *cobra.Command) *boardmap.Compiler {
	verbose, _ := cmd.Flags().GetBool("verbose")
	impassableFill, _ := cmd.Flags().GetString("impassable-fill")
	backgroundRect, _ := cmd.Flags().GetString("background-rect")

	c := boardmap.New()
	if verbose {
		c = c.WithLogger(newLogger(cmd.ErrOrStderr()))
	}
	if impassableFill != "" {
		c = c.ImpassableFill(impassableFill)
	}
	if backgroundRect != "" {
		c = c.BackgroundRect(backgroundRect)
	}
	return c
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadMap reads and compiles the board document at path.
func loadMap(cmd *cobra.Command, path string) (*model.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	m, err := compilerFor(cmd).Compile(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s: %w", path, err)
	}
	return m, nil
}

func compileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <board.svg>",
		Short: "Compile a board document into a map asset",
		Long: `Compile a board document and write the map model.

Example:
  mapc compile board.svg --output board.json
  mapc compile board.svg --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			format, _ := cmd.Flags().GetString("format")

			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}

			data, err := encode(m, format)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%d provinces)\n", output, len(m.Provinces))
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringP("format", "f", "json", "Output format (json, yaml)")

	return cmd
}

// encode serializes a map in the named format.
func encode(m *model.Map, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(m)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <board.svg>",
		Short: "Summarize a board document",
		Long: `Compile a board document and print what it contains, listing provinces
that have no center marker or no label and shapes that fall outside the
canvas.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

// printReport writes a human-readable summary of a compiled map.
func printReport(w io.Writer, m *model.Map) {
	fmt.Fprintf(w, "Canvas:              %gx%g\n", m.Width, m.Height)
	fmt.Fprintf(w, "Provinces:           %d\n", len(m.Provinces))
	fmt.Fprintf(w, "Supply centers:      %d\n", len(m.SupplyCenters()))
	fmt.Fprintf(w, "Borders:             %d\n", len(m.Borders))
	fmt.Fprintf(w, "Impassable regions:  %d\n", len(m.ImpassableProvinces))
	fmt.Fprintf(w, "Background elements: %d\n", len(m.BackgroundElements))

	var noCenter, noLabel, outside, unparsed []string
	var extent model.BBox
	drawn := 0
	canvas := model.BBox{Width: m.Width, Height: m.Height}
	for _, p := range m.Provinces {
		if p.Center == (model.Point{}) {
			noCenter = append(noCenter, p.ID)
		}
		if p.Text == nil {
			noLabel = append(noLabel, p.ID)
		}
		path, err := pathdata.Parse(p.Path)
		if err != nil {
			unparsed = append(unparsed, p.ID)
			continue
		}
		if path.IsEmpty() {
			continue
		}
		b := path.Bounds()
		if drawn == 0 {
			extent = b
		} else {
			extent = extent.Union(b)
		}
		drawn++
		if !canvas.Contains(model.Point{X: b.X, Y: b.Y}) || !canvas.Contains(model.Point{X: b.Right(), Y: b.Bottom()}) {
			outside = append(outside, p.ID)
		}
	}

	if drawn > 0 {
		fmt.Fprintf(w, "Province extent:     %g,%g to %g,%g\n", extent.X, extent.Y, extent.Right(), extent.Bottom())
	}

	printList(w, "Without center marker", noCenter)
	printList(w, "Without label", noLabel)
	printList(w, "Outside canvas", outside)
	printList(w, "Unparseable path", unparsed)
}

func printList(w io.Writer, title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d):\n", title, len(ids))
	for _, id := range ids {
		fmt.Fprintf(w, "  - %s\n", id)
	}
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <board.svg>",
		Short: "Render a compiled board to PNG",
		Long: `Compile a board document and rasterize its provinces, impassable
regions and borders to a PNG image.

Example:
  mapc preview board.svg --output board.png --scale 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			scale, _ := cmd.Flags().GetFloat64("scale")

			if output == "" {
				return fmt.Errorf("--output flag is required")
			}

			m, err := loadMap(cmd, args[0])
			if err != nil {
				return err
			}

			opts := preview.Options{Scale: scale}
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				opts.Logger = newLogger(cmd.ErrOrStderr())
			}
			img, err := preview.Render(m, opts)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("failed to encode PNG: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%dx%d)\n", output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output PNG file")
	cmd.Flags().Float64("scale", 1, "Scale factor applied to board coordinates")

	return cmd
}
