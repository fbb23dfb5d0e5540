// colorpal generates, converts and sorts colours from the terminal using the
// same colour core as the server.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/colorpal/colorpal-server/internal/service"
)

// Global flags
var outputJSON bool

var generator = service.NewGeneratorService(nil, nil)

var rootCmd = &cobra.Command{
	Use:   "colorpal",
	Short: "Colour palette tools",
	Long: `colorpal works with colours offline, without a running server.

Examples:
  colorpal generate "#3498db" --scheme triadic
  colorpal convert f80
  colorpal convert f80 --tint 50
  colorpal random --count 5
  colorpal sort "#00ff00" "#ff0000" "#0000ff"`,
	SilenceUsage: true,
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List supported palette schemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemes := generator.Schemes()
		if outputJSON {
			return writeJSON(cmd.OutOrStdout(), schemes)
		}
		for _, s := range schemes {
			fmt.Fprintf(cmd.OutOrStdout(), "%-22s base at %d\n", s.Name, s.BaseIndex)
		}
		return nil
	},
}

var schemeName string

var generateCmd = &cobra.Command{
	Use:   "generate <hex>",
	Short: "Generate a five-colour palette from a base colour",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := generator.Generate(service.GenerateRequest{BaseHex: args[0], Scheme: schemeName})
		if err != nil {
			return err
		}
		if outputJSON {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render(string(p.Scheme)))
		fmt.Fprintln(cmd.OutOrStdout(), renderPalette(p.Colors, p.BaseIndex))
		return nil
	},
}

var convertTint, convertShade int

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Show a colour as hex, RGB, HSL and CMYK",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sw, err := generator.Adjust(service.AdjustRequest{Hex: args[0], Tint: convertTint, Shade: convertShade})
		if err != nil {
			return err
		}
		if outputJSON {
			return writeJSON(cmd.OutOrStdout(), sw)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderDetails(sw))
		return nil
	},
}

var randomCount int

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick random colours suitable as palette bases",
	RunE: func(cmd *cobra.Command, args []string) error {
		if randomCount < 1 {
			return errors.New("--count must be at least 1")
		}
		swatches := make([]service.Swatch, randomCount)
		for i := range swatches {
			swatches[i] = generator.Random()
		}
		if outputJSON {
			return writeJSON(cmd.OutOrStdout(), swatches)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPalette(swatches, -1))
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort <hex>...",
	Short: "Order colours by hue, then lightness",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sorted, err := generator.SortByHue(service.SortRequest{Colors: args})
		if err != nil {
			return err
		}
		if outputJSON {
			return writeJSON(cmd.OutOrStdout(), sorted)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderPalette(sorted, -1))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output as JSON")

	generateCmd.Flags().StringVarP(&schemeName, "scheme", "s", "analogous", "Palette scheme (see 'colorpal schemes')")
	convertCmd.Flags().IntVar(&convertTint, "tint", 0, "Percentage of white to mix in (0-100)")
	convertCmd.Flags().IntVar(&convertShade, "shade", 0, "Percentage of black to mix in (0-100)")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "Number of colours")

	rootCmd.AddCommand(schemesCmd, generateCmd, convertCmd, randomCmd, sortCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
