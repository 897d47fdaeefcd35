package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
)

func writeReport(w io.Writer, format string, res result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "text":
		writeText(w, res)
		return nil
	default:
		return errors.New("unknown output format").WithTag("format", format)
	}
}

func writeText(w io.Writer, res result) {
	s := res.Summary
	fmt.Fprintf(w, "run %s\n", res.RunID)
	fmt.Fprintf(w, "  cells:   %d (%d raised)\n", s.Cells, s.Raised)
	fmt.Fprintf(w, "  seeds:   %v\n", res.Seeds)
	fmt.Fprintf(w, "  heights: min %.3f  max %.3f  mean %.3f  stddev %.3f\n", s.Min, s.Max, s.Mean, s.StdDev)

	islands := slices.Clone(res.Islands)
	slices.SortStableFunc(islands, func(a, b []int) int { return len(b) - len(a) })
	fmt.Fprintf(w, "ISLANDS (%d) at sea level %.2f:\n", len(islands), res.SeaLevel)
	for i, isl := range islands {
		fmt.Fprintf(w, "  #%d  %d cells, first %d\n", i+1, len(isl), slices.Min(isl))
	}
}
