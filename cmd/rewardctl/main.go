package main

import (
	"os"

	"github.com/ormanli/rewards/cmd/rewardctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
