// Command cargopack loads a ULD manifest and a parcel manifest, runs the
// pack driver, validates its output, and writes the output ledger to stdout
// or a file.
//
// Usage:
//
//	cargopack -ulds ulds.csv -parcels parcels.csv [-out ledger.csv] [-spread 0] [-tree] [-concurrent]
//
// Exit codes: 0 on success, 1 if any priority parcel could not be packed, 2
// on a manifest read/write error or a failed post-run validation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/cargopack/manifest"
	"github.com/katalvlaran/cargopack/packer"
	"github.com/katalvlaran/cargopack/validator"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cargopack", flag.ContinueOnError)
	uldsPath := fs.String("ulds", "", "path to the ULD manifest CSV")
	parcelsPath := fs.String("parcels", "", "path to the parcel manifest CSV")
	outPath := fs.String("out", "", "path to write the output ledger CSV (default stdout)")
	spread := fs.Int64("spread", 0, "priority-spread penalty S")
	useTree := fs.Bool("tree", false, "use the space-tree free-space representation instead of free-rectangle lists")
	concurrent := fs.Bool("concurrent", false, "probe candidate ULDs concurrently for each priority parcel")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *uldsPath == "" || *parcelsPath == "" {
		fmt.Fprintln(os.Stderr, "cargopack: -ulds and -parcels are required")
		return 2
	}

	uldsFile, err := os.Open(*uldsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", err)
		return 2
	}
	defer uldsFile.Close()
	ulds, err := manifest.ReadULDs(uldsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", err)
		return 2
	}

	parcelsFile, err := os.Open(*parcelsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", err)
		return 2
	}
	defer parcelsFile.Close()
	parcels, err := manifest.ReadParcels(parcelsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", err)
		return 2
	}

	opts := []packer.Option{packer.WithSpreadPenalty(*spread)}
	if *useTree {
		opts = append(opts, packer.WithRepresentation(packer.SpaceTreeRepresentation))
	}
	if *concurrent {
		opts = append(opts, packer.WithConcurrentProbing())
	}

	result, packErr := packer.Pack(ulds, parcels, opts...)
	if packErr != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", packErr)
	}

	report, err := validator.Validate(ulds, result.Packed)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargopack: validation error:", err)
		return 2
	}
	if !report.Valid {
		for _, v := range report.Violations {
			fmt.Fprintln(os.Stderr, "cargopack: violation:", v.Message)
		}
		return 2
	}

	manifest.SortByID(parcels)
	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "cargopack:", err)
			return 2
		}
		defer f.Close()
		out = f
	}
	if err := manifest.WriteLedger(out, parcels, result.TotalCost, result.ULDsWithPriority); err != nil {
		fmt.Fprintln(os.Stderr, "cargopack:", err)
		return 2
	}

	if packErr != nil {
		return 1
	}

	return 0
}
