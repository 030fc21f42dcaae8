package tracefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ephys/ephys/trace"
)

const recording = "time\tch1\tch2\tch3\tch4\n" +
	"119.95\t0.1\t0.2\t0.3\t0.4\n" +
	"120.00\t0.5\t0.6\t0.7\t0.8\tcut\n" +
	"120.05\t-0.1\t-0.2\t-0.3\t-0.4\n" +
	"\n"

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		want Name
	}{
		{"wt ch1CA1 ch2CA3 ch3DG ch4EC.txt", Name{"wt", [4]string{"CA1", "CA3", "DG", "EC"}}},
		{"data/raw/ko ch1a ch2b ch3c ch4d.txt", Name{"ko", [4]string{"a", "b", "c", "d"}}},
		{"msl 5 ch1x ch2y ch3z ch4w.txt", Name{"msl5", [4]string{"x", "y", "z", "w"}}},
		// only the channel prefix is removed, not repeated prefix characters
		{"wt ch1ch1 ch2c ch3h ch4.txt", Name{"wt", [4]string{"ch1", "c", "h", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNameErrors(t *testing.T) {
	for _, name := range []string{"wt.txt", "wt ch1a ch2b ch3c.txt", "wt ch1a ch2b ch3c ch4d extra.txt", ""} {
		_, err := ParseName(name)
		require.ErrorIs(t, err, ErrBadFilename, name)
	}
}

func TestRead(t *testing.T) {
	traces, err := Read(strings.NewReader(recording), "wt ch1A ch2B ch3C ch4D.txt")
	require.NoError(t, err)
	require.Len(t, traces, 4)

	for i, tr := range traces {
		ch := "ch" + string(rune('1'+i))
		assert.Equal(t, "wt ch1A ch2B ch3C ch4D.txt", tr.ID.File)
		assert.Equal(t, ch, tr.ID.Channel)
		assert.Equal(t, ch, tr.Meta.Channel)
		assert.Equal(t, "wt", tr.Meta.Genotype)
		assert.Equal(t, string(rune('A'+i)), tr.Meta.Target)
		assert.Empty(t, tr.Meta.Source)
		require.Len(t, tr.Samples, 3)
		assert.Equal(t, []int{1}, tr.CutIndices())
	}

	assert.Equal(t, trace.Sample{Time: 120, Value: 0.7, Cut: true}, traces[2].Samples[1])
	assert.Equal(t, []float64{-0.1, -0.2, -0.3, -0.4}, []float64{
		traces[0].Samples[2].Value, traces[1].Samples[2].Value,
		traces[2].Samples[2].Value, traces[3].Samples[2].Value,
	})

	aligned, err := trace.Align(traces[0])
	require.NoError(t, err)
	assert.Equal(t, 0.0, aligned.Samples[1].Time)
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader(recording), "bad name.txt")
	require.ErrorIs(t, err, ErrBadFilename)

	short := "header\n1\t2\t3\n"
	_, err = Read(strings.NewReader(short), "wt ch1a ch2b ch3c ch4d.txt")
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), ":2")

	bad := "header\n1\t2\tx\t4\t5\n"
	_, err = Read(strings.NewReader(bad), "wt ch1a ch2b ch3c ch4d.txt")
	require.ErrorIs(t, err, ErrMalformedLine)
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}

	write("wt ch1a ch2b ch3c ch4d.txt", recording)
	write("ko ch1a ch2b ch3c ch4d.txt", recording)
	write("notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	traces, err := ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, traces, 8)
	assert.Equal(t, "ko ch1a ch2b ch3c ch4d.txt", traces[0].ID.File)
	assert.Equal(t, "wt ch1a ch2b ch3c ch4d.txt", traces[4].ID.File)

	_, err = ReadDir(filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wt ch1a ch2b ch3c ch4d.txt")
	require.NoError(t, os.WriteFile(path, []byte(recording), 0o600))

	traces, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, traces, 4)
	assert.Equal(t, "wt ch1a ch2b ch3c ch4d.txt", traces[0].ID.File)
}
