// bioscreen-graph draws charts from a previously written summary file,
// optionally restricted to named groups or samples.
package main

import (
	"flag"
	"log"
	"strings"

	"github.com/cwrussell/bioscreen/graph"
	"github.com/cwrussell/bioscreen/summary"
)

func main() {
	var summaryFile, outFile, groupBase string
	var groups, samples string
	var title, xlabel, ylabel string
	var legend bool

	flag.StringVar(&summaryFile, "summary", "", "Path to a summary file written by bioscreen-summarize.")
	flag.StringVar(&outFile, "out", "", "Path for a single chart holding the selected series.")
	flag.StringVar(&groupBase, "groupcharts", "", "Base name for one chart per group, written as <base>.<group>.png.")
	flag.StringVar(&groups, "groups", "", "Comma-separated group names to graph. (Optional.)")
	flag.StringVar(&samples, "samples", "", "Comma-separated column labels (group__sample) to graph. (Optional.)")
	flag.StringVar(&title, "title", "", "Chart title. (Optional.)")
	flag.StringVar(&xlabel, "xlabel", "Time (h)", "Chart x-axis label.")
	flag.StringVar(&ylabel, "ylabel", "OD600", "Chart y-axis label.")
	flag.BoolVar(&legend, "legend", true, "Draw a legend on charts.")

	flag.Parse()

	if summaryFile == "" {
		log.Fatalln("Please provide -summary")
	}

	if outFile == "" && groupBase == "" {
		log.Fatalln("Please provide -out or -groupcharts")
	}

	log.Println("Launched bioscreen-graph")

	if err := runAll(summaryFile, outFile, groupBase, splitList(groups), splitList(samples), title, xlabel, ylabel, legend); err != nil {
		log.Fatalln(err)
	}
}

func runAll(summaryFile, outFile, groupBase string, groups, samples []string, title, xlabel, ylabel string, legend bool) error {

	table, err := summary.Load(summaryFile)
	if err != nil {
		return err
	}
	log.Println("Loaded summary with", len(table.Columns), "columns across groups", table.Groups())

	opts := graph.DefaultOptions()
	opts.Title = title
	opts.XLabel = xlabel
	opts.YLabel = ylabel
	opts.Legend = legend

	if outFile != "" {
		series := summary.Select(table, groups, samples)
		if err := graph.Render(outFile, series, opts); err != nil {
			return err
		}
		log.Println("Wrote", outFile)
	}

	if groupBase != "" {
		if err := graph.RenderGroups(groupBase, table, opts); err != nil {
			return err
		}
		log.Println("Wrote per-group charts with base name", groupBase)
	}

	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	out := strings.Split(s, ",")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}

	return out
}
