// Package main is the PGN analyzer CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/seabus/n2kbridge/analyzer/cli"
	"github.com/seabus/n2kbridge/common"
)

func main() {
	c, err := cli.New(os.Args)
	handleErr(err)
	handleErr(c.Run())
}

func handleErr(err error) {
	if err == nil {
		return
	}
	var exitErr *common.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprint(os.Stderr, err.Error())
	os.Exit(1)
}
