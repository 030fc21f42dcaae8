// Package tracefile reads raw four-channel recordings.
//
// A file is tab separated with one header line followed by
//
//	time  ch1  ch2  ch3  ch4  [cut]
//
// where a sixth field marks the cut-point line. File names encode the
// genotype and each channel's target: "<genotype> ch1<A> ch2<B> ch3<C> ch4<D>.txt".
package tracefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-ephys/ephys"
	"github.com/cwbudde/algo-ephys/ephys/trace"
)

// Channels is the number of recorded channels per file.
const Channels = 4

var (
	// ErrBadFilename is returned when a file name does not carry a genotype
	// and four channel targets.
	ErrBadFilename = errors.New("tracefile: malformed file name")
	// ErrMalformedLine is returned for a data line that cannot be parsed.
	ErrMalformedLine = errors.New("tracefile: malformed line")
)

// Name is the metadata encoded in a file name.
type Name struct {
	Genotype string
	Targets  [Channels]string
}

// ParseName extracts the genotype and channel targets from a file name.
// The directory and extension are ignored.
func ParseName(name string) (Name, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "msl 5", "msl5")

	tokens := strings.Fields(base)
	if len(tokens) != Channels+1 {
		return Name{}, fmt.Errorf("%w: %q has %d tokens, want %d", ErrBadFilename, name, len(tokens), Channels+1)
	}

	n := Name{Genotype: tokens[0]}
	for i := range Channels {
		n.Targets[i] = strings.TrimPrefix(tokens[i+1], channelName(i))
	}

	return n, nil
}

func channelName(i int) string {
	return "ch" + strconv.Itoa(i+1)
}

// Read parses one recording into four traces, one per channel, identified
// by name. Every sample of the cut line carries the cut flag.
func Read(r io.Reader, name string) ([]trace.Trace, error) {
	meta, err := ParseName(name)
	if err != nil {
		return nil, err
	}

	file := filepath.Base(name)
	traces := make([]trace.Trace, Channels)

	for i := range traces {
		ch := channelName(i)
		traces[i] = trace.Trace{
			ID: ephys.TraceID{File: file, Channel: ch},
			Meta: trace.Metadata{
				Genotype: meta.Genotype,
				Target:   meta.Targets[i],
				Channel:  ch,
			},
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0

	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}

		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < Channels+1 {
			return nil, fmt.Errorf("%w: %s:%d has %d fields", ErrMalformedLine, file, lineNo, len(fields))
		}

		cut := len(fields) > Channels+1 && strings.TrimSpace(fields[Channels+1]) != ""

		var nums [Channels + 1]float64
		for k := range nums {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[k]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d field %d: %w", ErrMalformedLine, file, lineNo, k+1, err)
			}

			nums[k] = v
		}

		for i := range traces {
			traces[i].Samples = append(traces[i].Samples, trace.Sample{
				Time:  nums[0],
				Value: nums[i+1],
				Cut:   cut,
			})
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tracefile: read %s: %w", file, err)
	}

	return traces, nil
}

// ReadFile reads one recording from disk.
func ReadFile(path string) ([]trace.Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tracefile: %w", err)
	}
	defer f.Close()

	return Read(f, path)
}

// ReadDir reads every .txt recording in dir in file name order.
func ReadDir(dir string) ([]trace.Trace, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("tracefile: %w", err)
	}

	var names []string

	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			names = append(names, e.Name())
		}
	}

	slices.Sort(names)

	var out []trace.Trace

	for _, n := range names {
		traces, err := ReadFile(filepath.Join(dir, n))
		if err != nil {
			return nil, err
		}

		out = append(out, traces...)
	}

	return out, nil
}
