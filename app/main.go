package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/basic6502/host"
)

func main() {
	h := host.New()

	// Each command-line argument names a monitor script to run before
	// going interactive. Typical scripts load a BASIC ROM image and
	// reset the CPU.
	for _, filename := range os.Args[1:] {
		if err := runScript(h, filename); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}

	// A ctrl-C while the CPU is running drops back to the monitor
	// prompt instead of killing the process.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		for range sig {
			h.Break()
		}
	}()

	h.RunCommands(os.Stdin, os.Stdout, true)
}

func runScript(h *host.Host, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	h.RunCommands(file, os.Stdout, false)
	return nil
}
