package cmd

import (
	"fmt"

	olc "github.com/DVDpro/open-location-code"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <code>",
	Short: "Classify a plus code as invalid, short or full",
	Long: `Check the structure of a plus code and report whether it is valid,
and if so whether it is a short or a full code.

Example:
  olc check 9F2P2CQH+WW`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		version, err := selectedVersion(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		code := olc.New(args[0], version)
		switch {
		case code.IsFull():
			fmt.Println("full")
		case code.IsShort():
			fmt.Println("short")
		case code.IsValid():
			fmt.Println("valid (out of coordinate range)")
		default:
			fmt.Println("invalid")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
