// bioscreen-summarize reads a raw Bioscreen export plus a plate
// configuration file and writes the blank-corrected, replicate-averaged
// summary table, optionally graphing it.
package main

import (
	"flag"
	"log"

	"github.com/cwrussell/bioscreen/bsm"
	"github.com/cwrussell/bioscreen/graph"
	"github.com/cwrussell/bioscreen/plate"
	"github.com/cwrussell/bioscreen/summary"
)

func main() {
	var dataFile, configFile, outFile, graphBase string
	var timepoints, encoding, sep string
	var skipRows int
	var title, xlabel, ylabel string
	var legend bool

	flag.StringVar(&dataFile, "data", "", "Path to the raw Bioscreen export.")
	flag.StringVar(&configFile, "config", "", "Path to the tab-delimited plate configuration file (group, sample, wells per line).")
	flag.StringVar(&outFile, "out", "", "Path for the tab-delimited summary output.")
	flag.StringVar(&graphBase, "graph", "", "Base name for chart output. Writes <base>.png with all series plus <base>.<group>.png per group. (Optional.)")
	flag.StringVar(&timepoints, "timepoints", "hours", "Time unit for the summary: days, hours, or minutes.")
	flag.StringVar(&encoding, "encoding", bsm.DefaultReadOptions().Encoding, "Text encoding of the export: utf-16le for native .bsm files, utf-8 for plain delimited files.")
	flag.StringVar(&sep, "sep", ",", "Field delimiter of the export. Use 'tab' for tab-delimited or 'auto' to sniff it.")
	flag.IntVar(&skipRows, "skiprows", bsm.DefaultReadOptions().SkipRows, "Number of leading rows before the header row.")
	flag.StringVar(&title, "title", "", "Chart title. (Optional.)")
	flag.StringVar(&xlabel, "xlabel", "", "Chart x-axis label. Defaults to naming the chosen time unit.")
	flag.StringVar(&ylabel, "ylabel", "OD600", "Chart y-axis label.")
	flag.BoolVar(&legend, "legend", true, "Draw a legend on charts.")

	flag.Parse()

	if dataFile == "" {
		log.Fatalln("Please provide -data")
	}

	if configFile == "" {
		log.Fatalln("Please provide -config")
	}

	if outFile == "" {
		log.Fatalln("Please provide -out")
	}

	log.Println("Launched bioscreen-summarize")

	if err := runAll(dataFile, configFile, outFile, graphBase, timepoints, encoding, sep, skipRows, title, xlabel, ylabel, legend); err != nil {
		log.Fatalln(err)
	}
}

func runAll(dataFile, configFile, outFile, graphBase, timepoints, encoding, sep string, skipRows int, title, xlabel, ylabel string, legend bool) error {

	unit, err := summary.ParseUnit(timepoints)
	if err != nil {
		return err
	}

	cfg, err := plate.LoadFile(configFile)
	if err != nil {
		return err
	}
	log.Println("Loaded configuration with", len(cfg), "groups:", cfg.GroupNames())

	opts := bsm.ReadOptions{
		Sep:      parseSep(sep),
		SkipRows: skipRows,
		Encoding: encoding,
	}

	raw, err := bsm.Load(dataFile, opts)
	if err != nil {
		return err
	}
	log.Println("Loaded", raw.Rows(), "timepoints across", len(raw.Wells), "wells")

	table, err := summary.Summarize(cfg, raw, summary.InUnit(unit))
	if err != nil {
		return err
	}

	if err := table.WriteFile(outFile); err != nil {
		return err
	}
	log.Println("Wrote summary with", len(table.Columns), "columns to", outFile)

	if graphBase == "" {
		return nil
	}

	graphOpts := graph.DefaultOptions()
	graphOpts.Title = title
	graphOpts.YLabel = ylabel
	graphOpts.Legend = legend
	graphOpts.XLabel = xlabel
	if graphOpts.XLabel == "" {
		graphOpts.XLabel = "Time (" + unit.String() + ")"
	}

	if err := graph.Render(graphBase+".png", summary.Select(table, nil, nil), graphOpts); err != nil {
		return err
	}

	if err := graph.RenderGroups(graphBase, table, graphOpts); err != nil {
		return err
	}
	log.Println("Wrote charts with base name", graphBase)

	return nil
}

// parseSep maps the -sep flag onto a delimiter rune; zero means sniff.
func parseSep(sep string) rune {
	switch sep {
	case "auto":
		return 0
	case "tab", "\\t", "\t":
		return '\t'
	case "":
		return ','
	}

	return []rune(sep)[0]
}
