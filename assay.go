// Package kinetics reads enzyme inhibition assay tables: three-column
// (substrate concentration, uninhibited velocity, inhibited velocity) data as
// pasted from a spreadsheet or exported to CSV. The numeric analysis lives in
// the lineweaver subpackage; this package only gets measurements off disk and
// into paired sample sets.
package kinetics

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/enzlab/kinetics/lineweaver"
)

// AssayRow is one measurement row: a substrate concentration and the initial
// velocities observed at it with and without inhibitor. The csv tags match
// the column headers the table must carry.
type AssayRow struct {
	Substrate    float64 `csv:"Substrate_Concentration"`
	VUninhibited float64 `csv:"V0_Uninhibited"`
	VInhibited   float64 `csv:"V0_Inhibited"`
}

// AssayTable is a parsed assay data table.
type AssayTable struct {
	Rows []*AssayRow
}

var requiredColumns = []string{"Substrate_Concentration", "V0_Uninhibited", "V0_Inhibited"}

// ReadAssayTable parses a 3-column assay table from r. The delimiter is
// sniffed (tab, comma, and semicolon all work), the header row is required,
// and all three columns must be present.
func ReadAssayTable(r io.Reader) (*AssayTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading assay table: %w", err)
	}

	delim := DetermineDelimiter(bytes.NewReader(raw))

	if err := checkHeader(raw, delim); err != nil {
		return nil, err
	}

	// Tell gocsv to use the sniffed delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		cr := csv.NewReader(in)
		cr.Comma = delim
		cr.LazyQuotes = true
		cr.TrimLeadingSpace = true
		return cr
	})

	rows := []*AssayRow{}
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return nil, fmt.Errorf("parsing assay table: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("assay table has a header but no data rows")
	}

	return &AssayTable{Rows: rows}, nil
}

func checkHeader(raw []byte, delim rune) error {
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("reading assay table header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[strings.TrimSpace(col)] = true
	}

	for _, col := range requiredColumns {
		if !seen[col] {
			return fmt.Errorf("assay table must have these 3 columns: %s (missing %q)", strings.Join(requiredColumns, ", "), col)
		}
	}

	return nil
}

// SampleSets splits the table into its two per-condition sample sets, in row
// order. Each set pairs the shared substrate concentrations with that
// condition's velocities.
func (t *AssayTable) SampleSets() (uninhibited, inhibited []lineweaver.Sample) {
	uninhibited = make([]lineweaver.Sample, 0, len(t.Rows))
	inhibited = make([]lineweaver.Sample, 0, len(t.Rows))

	for _, row := range t.Rows {
		uninhibited = append(uninhibited, lineweaver.Sample{Concentration: row.Substrate, Velocity: row.VUninhibited})
		inhibited = append(inhibited, lineweaver.Sample{Concentration: row.Substrate, Velocity: row.VInhibited})
	}

	return uninhibited, inhibited
}
