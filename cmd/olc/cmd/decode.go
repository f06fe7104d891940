package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// s2CellLevel is the S2 cell level printed alongside a decoded area. Level
// 20 cells are a few meters across, comparable to a 10-digit code cell.
const s2CellLevel = 20

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a full plus code into its area",
	Long: `Decode a full plus code and print the area bounds, the center and
the S2 cell of the center.

Example:
  olc decode 9F2P2CQH+WW`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version, err := selectedVersion(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		area, err := olc.ForVersion(version).Decode(args[0])
		if err != nil {
			fmt.Printf("Error decoding: %v\n", err)
			return
		}
		lat, lng := area.Center()
		fmt.Printf("latitude:  [%.11f, %.11f]\n", area.LatLow, area.LatHigh)
		fmt.Printf("longitude: [%.11f, %.11f]\n", area.LngLow, area.LngHigh)
		fmt.Printf("center:    %.11f, %.11f\n", lat, lng)
		fmt.Printf("digits:    %d\n", area.CodeLength)
		fmt.Printf("s2 cell:   %s\n", area.CellID(s2CellLevel).ToToken())
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
