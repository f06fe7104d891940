package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// recoverCmd represents the recover command
var recoverCmd = &cobra.Command{
	Use:   "recover <code> <lat> <lng>",
	Short: "Recover the nearest full code for a short plus code",
	Long: `Recover the full plus code nearest to a reference location from a
short code.

Example:
  olc recover 2CQH+WW 50.0398 14.4298`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		version, err := selectedVersion(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lat, err := parseCoordinate(args[1], "latitude")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lng, err := parseCoordinate(args[2], "longitude")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		full, err := olc.ForVersion(version).RecoverNearest(args[0], lat, lng)
		if err != nil {
			fmt.Printf("Error recovering: %v\n", err)
			return
		}
		fmt.Println(full)
	},
}

func init() {
	rootCmd.AddCommand(recoverCmd)
}
