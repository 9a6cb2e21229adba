//go:build !lambda

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	Verbose = cfg.Verbose

	code := 0
	if _, err := run(cfg, os.Stderr); err != nil {
		fmt.Printf("An error occurred: %v\n", err)
		code = 1
	} else {
		fmt.Println(successMessage)
	}

	if !cfg.NoWait {
		fmt.Println("Press Enter to close the program.")
		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}
	os.Exit(code)
}
