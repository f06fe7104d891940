package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <lat> <lng>",
	Short: "Encode a coordinate into a plus code",
	Long: `Encode a latitude/longitude pair into a full plus code.

Example:
  olc encode 50.0398061 14.4298583
  olc encode --length 11 50.0398061 14.4298583`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		version, err := selectedVersion(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lat, err := parseCoordinate(args[0], "latitude")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lng, err := parseCoordinate(args[1], "longitude")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		length, _ := cmd.Flags().GetInt("length")

		code, err := olc.ForVersion(version).Encode(lat, lng, length)
		if err != nil {
			fmt.Printf("Error encoding: %v\n", err)
			return
		}
		fmt.Println(code)
	},
}

func init() {
	encodeCmd.Flags().IntP("length", "l", olc.DefaultCodeLength, "Number of significant code digits")
	rootCmd.AddCommand(encodeCmd)
}
