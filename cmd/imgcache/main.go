package main

import (
	"fmt"
	"os"

	"github.com/Borislavv/go-image-cache/internal/cli"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	if err := cli.NewRootCmd(version, commit, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
