package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// geohashCmd represents the geohash command
var geohashCmd = &cobra.Command{
	Use:   "geohash <code>",
	Short: "Print a geohash for the center of a full plus code",
	Long: `Print a geohash covering the center of a full plus code, at a
precision comparable to the code's cell.

Example:
  olc geohash 9F2P2CQH+WW`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version, err := selectedVersion(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		hash, err := olc.ToGeohash(args[0], version)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println(hash)
	},
}

func init() {
	rootCmd.AddCommand(geohashCmd)
}
