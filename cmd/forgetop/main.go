package main

import (
	"os"

	"github.com/forgeline/forgetop/cmd/forgetop/subcmd"
)

func main() {
	if err := subcmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
