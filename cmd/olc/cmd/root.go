package cmd

import (
	"fmt"
	"os"
	"strconv"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "olc",
	Short: "Open Location Code (plus code) toolbox",
	Long: `olc converts between latitude/longitude coordinates and Open
Location Codes, and shortens or recovers codes against a reference
location. Both the legacy and the revised ("next") code formats are
supported via --format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("format", "f", "next", `Code format: "next" or "legacy"`)
}

// selectedVersion resolves the --format flag.
func selectedVersion(cmd *cobra.Command) (olc.Version, error) {
	f, _ := cmd.Flags().GetString("format")
	switch f {
	case "next":
		return olc.VersionNext, nil
	case "legacy":
		return olc.VersionLegacy, nil
	}
	return 0, fmt.Errorf("unknown format %q (want \"next\" or \"legacy\")", f)
}

// parseCoordinate parses a lat or lng command argument.
func parseCoordinate(arg, name string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return v, nil
}
