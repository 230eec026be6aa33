// Command dccircuit reads a Circuit-JSON document from a file argument
// or stdin, solves it, and reports the result — the teacher's own
// cmd/main.go tradition of a thin driver next to the library, extended
// with an -export flag for writing a CircuitikZ/LaTeX solution file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"dccircuit/convert"
	"dccircuit/export"
	"dccircuit/graph"
	"dccircuit/jsonio"
	"dccircuit/reducer"
	"dccircuit/solve"
	"dccircuit/types"
)

func main() {
	exportPath := flag.String("export", "", "write a circuitikz/latex solution file here instead of printing a summary")
	exportKind := flag.String("format", "circuitikz", "export format when -export is set: circuitikz or latex")
	external := flag.Float64("external", 0, "inject an external supply in volts between the + and - terminals")
	withExternal := flag.Bool("with-external", false, "enable -external")
	flag.Parse()

	data, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	root, err := jsonio.Unmarshal(data)
	if err != nil {
		log.Fatal(err)
	}
	circuit := convert.ToGraph(root)

	var opts *solve.Options
	if *withExternal {
		opts = &solve.Options{ExternalSupply: external}
	}

	if *exportPath != "" {
		if err := writeExport(*exportPath, *exportKind, circuit, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := printSummary(circuit, opts); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// printSummary solves circuit and writes per-resistor current/voltage,
// per-ammeter current, and the reduction trace to stdout.
func printSummary(circuit *types.Circuit, opts *solve.Options) error {
	result, err := solve.Solve(circuit, opts)
	if err != nil {
		return err
	}

	fmt.Println("Resistors:")
	for id, r := range result.Resistors {
		fmt.Printf("  R%d (%s): %g ohm, I=%.6g A, V=%.6g V\n", r.Index, id, r.Ohms, r.Current, r.Voltage)
	}
	fmt.Println("Ammeters:")
	for id, a := range result.Ammeters {
		fmt.Printf("  A%d (%s): I=%.6g A\n", a.Index, id, a.Current)
	}

	levels, err := solve.Reduce(circuit)
	if err != nil {
		fmt.Println("Reduction trace incomplete:", err)
	}
	fmt.Println("Reduction:")
	for _, lvl := range levels {
		fmt.Printf("  level %d\n", lvl.Index)
		for _, red := range lvl.Reductions {
			fmt.Printf("    %s: %s\n", red.Kind, red.Presentation)
		}
	}
	return nil
}

// writeExport renders either a CircuitikZ schematic or a LaTeX
// solution writeup and writes it to path, mirroring the teacher's
// convention of one focused function per output concern.
func writeExport(path, kind string, circuit *types.Circuit, opts *solve.Options) error {
	switch kind {
	case "circuitikz":
		g, err := graph.Canonicalize(circuit)
		if err != nil {
			return err
		}
		root, err := reducer.Reduce(g)
		if err != nil {
			return err
		}
		layout := export.Lay(root)
		out, err := export.CircuitikZ(layout)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(out), 0644)
	case "latex":
		levels, err := solve.Reduce(circuit)
		if err != nil && levels == nil {
			return err
		}
		result, err := solve.Solve(circuit, opts)
		if err != nil {
			return err
		}
		doc := export.SolutionDoc{Levels: levels, Cases: result.Cases, Total: result.Total}
		out, err := export.LaTeX(doc)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(out), 0644)
	default:
		return fmt.Errorf("unknown export format %q", kind)
	}
}
