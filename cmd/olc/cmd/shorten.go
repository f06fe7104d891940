package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// shortenCmd represents the shorten command
var shortenCmd = &cobra.Command{
	Use:   "shorten <code> <lat> <lng>",
	Short: "Shorten a full plus code against a reference location",
	Long: `Shorten a full plus code by removing leading digits implied by a
nearby reference location. In the next format the trim length is chosen
automatically; in the legacy format use --by to trim 4 or 6 digits.

If the reference is too far from the code, the code is printed unchanged.

Example:
  olc shorten 9F2P2CQH+WW 50.0398 14.4298
  olc --format legacy shorten --by 6 +9F2P.2CQHWW 50.0398 14.4298`,
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

		var short string
		switch codec := olc.ForVersion(version).(type) {
		case olc.NextCodec:
			short, err = codec.Shorten(args[0], lat, lng)
		case olc.LegacyCodec:
			by, _ := cmd.Flags().GetInt("by")
			switch by {
			case 4:
				short, err = codec.ShortenBy4(args[0], lat, lng)
			case 6:
				short, err = codec.ShortenBy6(args[0], lat, lng)
			default:
				err = fmt.Errorf("--by must be 4 or 6, got %d", by)
			}
		}
		if err != nil {
			fmt.Printf("Error shortening: %v\n", err)
			return
		}
		fmt.Println(short)
	},
}

func init() {
	shortenCmd.Flags().Int("by", 4, "Digits to trim in the legacy format (4 or 6)")
	rootCmd.AddCommand(shortenCmd)
}
