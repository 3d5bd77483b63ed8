// Command nestrace loads an iNES ROM and streams a per-instruction trace to
// stdout until it runs out of instructions, the caller sends SIGINT, or the
// CPU hits a fatal fault. It is a one-shot batch tool, not a REPL: it takes
// its ROM path as an argument and exits when the run ends.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/artcom-net/mayones/nes"
)

func main() {
	var (
		pc    = flag.Uint("pc", 0, "override the program counter after reset (hex, e.g. 0xC000); 0 uses the reset vector")
		max   = flag.Int("max", 0, "stop after this many instructions (0 means unbounded)")
		trace = flag.Bool("trace", true, "stream a per-instruction trace line to stdout; false runs silently")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <rom-path>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	console, err := nes.LoadPath(flag.Arg(0))
	if err != nil {
		log.Fatalf("nestrace: %v", err)
	}

	var pcOverride *uint16
	if *pc != 0 {
		v := uint16(*pc)
		pcOverride = &v
	}
	console.Reset(pcOverride)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var w io.Writer
	if *trace {
		w = os.Stdout
	}
	if err := console.Run(ctx, *max, w); err != nil {
		if _, ok := err.(*nes.FaultError); ok {
			log.Fatalf("nestrace: %v", err)
		}
		if err == context.Canceled {
			return
		}
		log.Fatalf("nestrace: %v", err)
	}
}
