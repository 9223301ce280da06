package kinetics

import (
	"strings"
	"testing"
)

const tabTable = "Substrate_Concentration\tV0_Uninhibited\tV0_Inhibited\n" +
	"1\t17.1\t7.1\n" +
	"2\t29.5\t13.6\n" +
	"4\t51.2\t25.0\n" +
	"8\t73.9\t42.8\n" +
	"16\t102.1\t66.6\n" +
	"32\t118.5\t92.3\n" +
	"50\t130.2\t107.1\n"

func TestReadAssayTableDelimiters(t *testing.T) {
	for _, v := range []struct {
		name  string
		input string
	}{
		{"tab", tabTable},
		{"comma", strings.ReplaceAll(tabTable, "\t", ",")},
		{"semicolon", strings.ReplaceAll(tabTable, "\t", ";")},
	} {
		t.Run(v.name, func(t *testing.T) {
			table, err := ReadAssayTable(strings.NewReader(v.input))
			if err != nil {
				t.Fatal(err)
			}

			if len(table.Rows) != 7 {
				t.Fatalf("parsed %d rows, expected 7", len(table.Rows))
			}

			first := table.Rows[0]
			if first.Substrate != 1 || first.VUninhibited != 17.1 || first.VInhibited != 7.1 {
				t.Fatalf("first row %+v, expected {1 17.1 7.1}", first)
			}
			last := table.Rows[6]
			if last.Substrate != 50 || last.VUninhibited != 130.2 || last.VInhibited != 107.1 {
				t.Fatalf("last row %+v, expected {50 130.2 107.1}", last)
			}
		})
	}
}

func TestReadAssayTableMissingColumn(t *testing.T) {
	input := "Substrate_Concentration\tV0_Uninhibited\n1\t17.1\n"

	if _, err := ReadAssayTable(strings.NewReader(input)); err == nil {
		t.Fatal("table without V0_Inhibited column parsed without error")
	} else if !strings.Contains(err.Error(), "V0_Inhibited") {
		t.Fatalf("missing-column error %q does not name the missing column", err)
	}
}

func TestReadAssayTableNoRows(t *testing.T) {
	input := "Substrate_Concentration\tV0_Uninhibited\tV0_Inhibited\n"

	if _, err := ReadAssayTable(strings.NewReader(input)); err == nil {
		t.Fatal("header-only table parsed without error")
	}
}

func TestSampleSetsPairing(t *testing.T) {
	table, err := ReadAssayTable(strings.NewReader(tabTable))
	if err != nil {
		t.Fatal(err)
	}

	un, in := table.SampleSets()

	if len(un) != 7 || len(in) != 7 {
		t.Fatalf("sample set lengths (%d, %d), expected (7, 7)", len(un), len(in))
	}
	for i, row := range table.Rows {
		if un[i].Concentration != row.Substrate || un[i].Velocity != row.VUninhibited {
			t.Fatalf("uninhibited sample %d is %+v, expected {%g %g}", i, un[i], row.Substrate, row.VUninhibited)
		}
		if in[i].Concentration != row.Substrate || in[i].Velocity != row.VInhibited {
			t.Fatalf("inhibited sample %d is %+v, expected {%g %g}", i, in[i], row.Substrate, row.VInhibited)
		}
	}
}
