// bioscreen-inspect loads a raw export and reports its shape and per-well
// reading statistics without summarizing, for checking reader settings
// before a real run.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gonum/stat"

	"github.com/cwrussell/bioscreen/bsm"
)

func main() {
	var dataFile, encoding, sep string
	var skipRows int

	flag.StringVar(&dataFile, "data", "", "Path to the raw Bioscreen export.")
	flag.StringVar(&encoding, "encoding", bsm.DefaultReadOptions().Encoding, "Text encoding of the export: utf-16le for native .bsm files, utf-8 for plain delimited files.")
	flag.StringVar(&sep, "sep", "auto", "Field delimiter of the export. Use 'tab' for tab-delimited or 'auto' to sniff it.")
	flag.IntVar(&skipRows, "skiprows", bsm.DefaultReadOptions().SkipRows, "Number of leading rows before the header row.")

	flag.Parse()

	if dataFile == "" {
		log.Fatalln("Please provide -data")
	}

	if err := runAll(dataFile, encoding, sep, skipRows); err != nil {
		log.Fatalln(err)
	}
}

func runAll(dataFile, encoding, sep string, skipRows int) error {

	opts := bsm.ReadOptions{
		Sep:      parseSep(sep),
		SkipRows: skipRows,
		Encoding: encoding,
	}

	raw, err := bsm.Load(dataFile, opts)
	if err != nil {
		return err
	}

	wells := raw.WellIndices()

	log.Println("Rows (timepoints):", raw.Rows())
	log.Println("Well columns:", len(wells))
	if len(wells) > 0 {
		log.Println("Well index range:", wells[0], "-", wells[len(wells)-1])
	}
	if raw.Rows() > 0 {
		log.Println("First timepoint:", raw.Times[0], " last:", raw.Times[raw.Rows()-1])
	}

	for _, w := range wells {
		col, _ := raw.Column(w)

		present := make([]float64, 0, len(col))
		for _, v := range col {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}

		if len(present) == 0 {
			log.Printf("well %d: no readings\n", w)
			continue
		}

		m, s := stat.MeanStdDev(present, nil)
		log.Printf("well %d: n=%d mean=%.4f sd=%.4f\n", w, len(present), m, s)
	}

	return nil
}

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
