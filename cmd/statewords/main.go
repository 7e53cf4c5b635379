// statewords finds words spelled by US state codes: plain concatenations,
// walks across bordering states, and anagrams of walks and closed tours.
package main

import (
	"os"

	"github.com/katalvlaran/statewords/cmd/statewords/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
