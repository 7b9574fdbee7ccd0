package main

import (
	"fmt"
	"io"

	"github.com/itsatony/go-askline"
)

func runVersion(args []string, stdout io.Writer) int {
	fmt.Fprintf(stdout, FmtVersionLine, askline.Version)
	return ExitCodeSuccess
}
