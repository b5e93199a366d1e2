// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/golmc/golmc/cpu"
	"github.com/golmc/golmc/emulator"
	"github.com/golmc/golmc/tui"
)

func main() {
	var source string
	var input string
	var output string
	var listing bool
	var interactive bool
	var limit int
	var verbose bool

	flag.StringVar(&source, "c", "", ".lmc file to assemble")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing, do not execute")
	flag.BoolVar(&interactive, "t", false, "Interactive stepper")
	flag.IntVar(&limit, "m", emulator.STEP_LIMIT, "Step limit, 0 for unbounded")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Assemble a new program image.
	if len(source) != 0 {
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}

		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	}

	if listing {
		os.Stdout.WriteString(emu.SourceListing())
		return
	}

	// The stepper owns the terminal, so only read a stdin tape when
	// one was piped in explicitly.
	if input == "-" {
		emu.Tape.Input = os.Stdin
		if interactive {
			emu.Tape.Input = nil
		}
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	emu.Load(emu.Tape.ReadValues())

	if interactive {
		if err := tui.Start(emu); err != nil {
			log.Fatal(err)
		}
	} else if limit > 0 {
		if err := emu.RunSteps(limit); err != nil {
			log.Fatal(err)
		}
	} else {
		emu.Run()
	}

	if err := emu.Tape.SendAll(emu.Outbox()); err != nil {
		log.Fatal(err)
	}
}
