// Command accheader prints the output column layout of the epoch summary
// for a given configuration.
//
// Usage:
//
//	accheader [flags]
//
// Examples:
//
//	accheader
//	accheader -bins 15
//	accheader -basic
//	accheader -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ahrends/acc-features/epoch"
)

func main() {
	bins := flag.Int("bins", 12, "spectral bins per banded or per-channel block")
	basic := flag.Bool("basic", false, "omit the extended feature groups")
	list := flag.Bool("list", false, "print one numbered column per line instead of the raw header")
	flag.Parse()

	cfg := epoch.Config{
		SampleRate:       100,
		FFTBins:          *bins,
		ExtendedFeatures: !*basic,
	}

	header := epoch.Header(cfg)

	if !*list {
		fmt.Println(header)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for i, name := range strings.Split(header, ",") {
		fmt.Fprintf(w, "%d\t%s\n", i, name)
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
