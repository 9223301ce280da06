// lbplot fits Vmax and Km for an uninhibited and an inhibited enzyme
// reaction from a 3-column assay table and renders a comparative
// Lineweaver-Burk plot.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carbocation/pfx"

	"github.com/enzlab/kinetics"
	"github.com/enzlab/kinetics/lineweaver"
)

func main() {
	var input, output, sUnits, vUnits string
	var points int

	flag.StringVar(&input, "input", "", "Path to the assay table (tab, comma, or semicolon delimited; columns Substrate_Concentration, V0_Uninhibited, V0_Inhibited). Use - for stdin.")
	flag.StringVar(&output, "out", "lineweaver.png", "Path where the comparative Lineweaver-Burk PNG will be written. Empty to skip plotting.")
	flag.StringVar(&sUnits, "sunits", "mM", "Substrate concentration units. Display only; never parsed.")
	flag.StringVar(&vUnits, "vunits", "μM/min", "Velocity units. Display only; never parsed.")
	flag.IntVar(&points, "points", 100, "Number of sample points for drawing each fit line.")

	flag.Parse()

	if input == "" {
		log.Fatalln("Please provide -input")
	}

	if err := run(input, output, sUnits, vUnits, points); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func run(input, output, sUnits, vUnits string, points int) error {
	var r io.Reader
	if input == "-" {
		r = os.Stdin
	} else {
		path, err := kinetics.ExpandHome(input)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		// Spreadsheet exports often arrive compressed; sniff and unwrap.
		rc, err := kinetics.MaybeDecompressReadCloserFromFile(f)
		if err != nil {
			return err
		}
		defer rc.Close()
		r = rc
	}

	table, err := kinetics.ReadAssayTable(r)
	if err != nil {
		return err
	}

	unSamples, inSamples := table.SampleSets()

	// The two conditions are analyzed independently: a failure in one is
	// reported by name and must not suppress the other's result.
	un, unErr := lineweaver.Analyze(unSamples)
	if unErr != nil {
		log.Println("Uninhibited (control) analysis failed:", unErr)
		un = nil
	} else {
		report("Uninhibited (control)", un, sUnits, vUnits)
	}

	in, inErr := lineweaver.Analyze(inSamples)
	if inErr != nil {
		log.Println("Inhibited analysis failed:", inErr)
		in = nil
	} else {
		report("Inhibited", in, sUnits, vUnits)
	}

	if unErr != nil && inErr != nil {
		return fmt.Errorf("neither condition could be analyzed")
	}

	if output == "" {
		return nil
	}

	outPath, err := kinetics.ExpandHome(output)
	if err != nil {
		return err
	}

	if err := renderComparative(outPath, sUnits, vUnits, points, un, in); err != nil {
		return err
	}
	log.Println("Wrote comparative Lineweaver-Burk plot to", outPath)

	return nil
}

func report(condition string, res *lineweaver.FitResult, sUnits, vUnits string) {
	log.Printf("%s: Vmax = %.2f %s | Km = %.2f %s\n", condition, res.Vmax, vUnits, res.Km, sUnits)
	log.Printf("%s: slope %.6g, intercept %.6g, R² %.4f, slope p %.3g, slope stderr %.3g, RMSE %.3g (n=%d)\n",
		condition, res.Slope, res.Intercept, res.RSquared(), res.PValue, res.StdErr, res.RMSE, res.N)
}
