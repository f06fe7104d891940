// Command olc converts between coordinates and Open Location Codes ("plus
// codes") from the command line.
//
// Usage:
//
//	olc encode 50.0398061 14.4298583
//	olc decode 9F2P2CQH+WW
//	olc shorten 9F2P2CQH+WW 50.0398 14.4298
//	olc recover 2CQH+WW 50.0398 14.4298
//	olc check 9F2P2CQH+WW
//
// The --format flag selects the legacy or the next code format.
package main

import "github.com/DVDpro/open-location-code/cmd/olc/cmd"

func main() {
	cmd.Execute()
}
