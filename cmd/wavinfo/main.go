// Command wavinfo prints decomposition properties of orthogonal wavelet
// families.
//
// Usage:
//
//	wavinfo [flags] [family ...]
//
// Without arguments it prints info for all known families.
//
// Examples:
//
//	wavinfo db3
//	wavinfo -size 2048 haar db4 db8
//	wavinfo -levels db3
//	wavinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ephys/dsp/wavelet"
)

func main() {
	size := flag.Int("size", 1024, "signal length in samples (dictionary resolution)")
	list := flag.Bool("list", false, "list available family names")
	levels := flag.Bool("levels", false, "print the per-band coefficient layout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags] [family ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter length, maximum level and basis size of wavelet families.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all families.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavinfo db3\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -size 2048 haar db4 db8\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -levels db3\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, n := range wavelet.Families() {
			fmt.Println(n)
		}
		return
	}

	if *size < 1 {
		fmt.Fprintf(os.Stderr, "error: -size must be positive\n")
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = wavelet.Families()
	}

	families := resolve(os.Stderr, names)
	if len(families) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching wavelet families\n")
		os.Exit(1)
	}

	if err := printInfo(os.Stdout, families, *size, *levels); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolve(warn io.Writer, names []string) []*wavelet.Wavelet {
	var out []*wavelet.Wavelet

	for _, name := range names {
		w, err := wavelet.Lookup(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(warn, "warning: unknown family %q (use -list to see available)\n", name)
			continue
		}

		out = append(out, w)
	}

	return out
}

func printInfo(out io.Writer, families []*wavelet.Wavelet, size int, levels bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "Family\tTaps\tSize\tMax Level\tBasis"
	if levels {
		header += "\tLayout"
	}

	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, w := range families {
		c, err := w.Decompose(make([]float64, size), -1)
		if err != nil {
			return fmt.Errorf("%s: %w", w.Name(), err)
		}

		row := fmt.Sprintf("%s\t%d\t%d\t%d\t%d", w.Name(), w.Len(), size, w.MaxLevel(size), c.Len())

		if levels {
			parts := make([]string, 0, len(c))
			for _, b := range c.Layout() {
				parts = append(parts, fmt.Sprintf("%c%d:%d", strings.ToUpper(b.Kind.String())[0], b.Level, b.Len))
			}

			row += "\t" + strings.Join(parts, " ")
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
