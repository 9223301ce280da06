package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/enzlab/kinetics/lineweaver"
)

// renderComparative draws both conditions' reciprocal data points and fitted
// lines over a shared x domain and writes the chart to a PNG. A nil result
// (failed condition) is simply left off the chart.
func renderComparative(filename, sUnits, vUnits string, points int, un, in *lineweaver.FitResult) error {
	xMin, xMax, err := lineweaver.Domain(un, in)
	if err != nil {
		return err
	}
	xFit := lineweaver.Linspace(xMin, xMax, points)

	var series []chart.Series
	if un != nil {
		series = append(series, conditionSeries("Uninhibited", drawing.ColorBlue, un, xFit)...)
	}
	if in != nil {
		series = append(series, conditionSeries("Inhibited", drawing.ColorRed, in, xFit)...)
	}

	graph := chart.Chart{
		Title:  "Inhibition Analysis",
		Width:  1024,
		Height: 640,
		XAxis: chart.XAxis{
			Name: fmt.Sprintf("1 / [S]   (1 / %s)", sUnits),
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("1 / v   (1 / %s)", vUnits),
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}

func conditionSeries(condition string, color drawing.Color, res *lineweaver.FitResult, xFit []float64) []chart.Series {
	yFit := make([]float64, len(xFit))
	for i, x := range xFit {
		yFit[i] = res.Eval(x)
	}

	return []chart.Series{
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s (data)", condition),
			XValues: res.InvS,
			YValues: res.InvV,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    color,
			},
		},
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("%s fit (Vmax=%.1f, Km=%.1f)", condition, res.Vmax, res.Km),
			XValues: xFit,
			YValues: yFit,
			Style: chart.Style{
				StrokeColor: color,
			},
		},
	}
}
