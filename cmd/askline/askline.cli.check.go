package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func runCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var scriptPath string
	fs.StringVar(&scriptPath, FlagScript, "", "")
	fs.StringVar(&scriptPath, FlagScriptShort, "", "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingScript, err)
		return ExitCodeUsageError
	}
	if scriptPath == "" {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingScript, errors.New(ErrMsgMissingScript))
		return ExitCodeUsageError
	}

	script, exitCode := loadScriptFile(scriptPath, os.Stdin, stderr)
	if exitCode != ExitCodeSuccess {
		return exitCode
	}

	fmt.Fprintf(stdout, FmtScriptOK, len(script.Fields))
	return ExitCodeSuccess
}
