package trace

import (
	"errors"

	"github.com/cwbudde/algo-ephys/ephys"
)

var (
	// ErrNoCutMarker is returned by Align when no sample is cut-marked.
	ErrNoCutMarker = errors.New("trace: no cut marker")
	// ErrMultipleCutMarkers is returned by Align when more than one sample is cut-marked.
	ErrMultipleCutMarkers = errors.New("trace: multiple cut markers")
)

// Align shifts all times so the cut-marked sample sits at time 0.
// Values, flags and metadata are unchanged. Aligning an aligned trace
// returns an equal trace.
func Align(tr Trace) (Trace, error) {
	const op = "align"

	cuts := tr.CutIndices()

	switch len(cuts) {
	case 0:
		return Trace{}, ephys.Errorf(ephys.KindAlignment, tr.ID, op, "%w", ErrNoCutMarker)
	case 1:
	default:
		return Trace{}, ephys.Errorf(ephys.KindAlignment, tr.ID, op,
			"%w: %d markers", ErrMultipleCutMarkers, len(cuts))
	}

	origin := tr.Samples[cuts[0]].Time
	out := make([]Sample, len(tr.Samples))

	for i, s := range tr.Samples {
		s.Time -= origin
		out[i] = s
	}

	return tr.withSamples(out), nil
}
