package main

import (
	"fmt"
	"io"
	"os"

	blackbg "github.com/gcslaoli/blackbg-remover-go"
)

// go run . logo.png logo_transparent.png
// go run . logo.jpg logo_transparent.tiff

const usage = "Usage: preprocess-logo <input.png> <output.png>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	input, output, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	if _, err := blackbg.ProcessFile(input, output, blackbg.DefaultThresholds()); err != nil {
		fmt.Fprintf(stderr, "preprocess-logo: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Saved transparent logo to %s\n", output)
	return 0
}

func parseArgs(args []string) (input, output string, err error) {
	if len(args) != 2 {
		return "", "", &blackbg.UsageError{Args: len(args)}
	}
	return args[0], args[1], nil
}
