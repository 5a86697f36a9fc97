package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/replmeta/internal/cli"
	"github.com/vvka-141/replmeta/pkg/replmeta"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(replmeta.ExitPanic)
		}
	}()

	if os.Getenv("REPLMETA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(replmeta.ExitCodeForError(err))
	}
}
