package main

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/cwbudde/algo-ephys/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// writeRecording writes a four-channel recording with samples at integer
// times [100, 140] and the cut line at 120. A negative cut omits it.
func writeRecording(t *testing.T, dir, name string, cut int) {
	t.Helper()

	times := testutil.Range(100, 1, 41)

	var b strings.Builder
	b.WriteString("time\tch1\tch2\tch3\tch4\n")

	resp := testutil.EvokedResponse(times, 120, 1)
	for i, tm := range times {
		fmt.Fprintf(&b, "%g\t%g\t%g\t%g\t%g", tm, resp[i], 2*resp[i], -resp[i], 0.5*resp[i]+0.01)
		if int(tm) == cut {
			b.WriteString("\tcut")
		}

		b.WriteString("\n")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0o600))
}

func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()

	path := filepath.Join(dir, "cfg.yaml")
	body := "wavelet_family: db3\nresolution: 16\n" +
		"window: {min_time: -50, max_time: 50, step: 1}\npenalty: 1.0e-4\nmean_loss: true\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestFamilies(t *testing.T) {
	out, err := execute(t, "families")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 40) // header, haar, db1..db38
	assert.Regexp(t, `^haar\s+2$`, lines[1])
	assert.Regexp(t, `^db3\s+6$`, lines[4])
	assert.Regexp(t, `^db38\s+76$`, lines[39])
}

func TestBasis(t *testing.T) {
	out, err := execute(t, "basis", "--family", "db3", "--resolution", "64", "--points", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "family=db3 resolution=64 rows=100 cols=77")
	assert.Regexp(t, `approximation\s+3\s+0\s+12`, out)
	assert.Regexp(t, `detail\s+1\s+43\s+34`, out)

	_, err = execute(t, "basis", "--family", "sym2")
	require.Error(t, err)

	_, err = execute(t, "basis", "--points", "1")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(data, 0o755))

	writeRecording(t, data, "wt ch1A ch2B ch3C ch4D.txt", 120)
	writeRecording(t, data, "ko ch1A ch2B ch3C ch4D.txt", -1)

	cfg := writeConfig(t, dir, "")
	db := filepath.Join(dir, "out", "results.db")

	out, err := execute(t, "run", "--config", cfg, "--out", db, "--log-level", "error", data)
	require.NoError(t, err)
	assert.Contains(t, out, "fitted 4 of 8 traces")

	conn, err := sql.Open("sqlite", db)
	require.NoError(t, err)
	defer conn.Close()

	var fitted, failed int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM traces`).Scan(&fitted))
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM failures WHERE kind = 'alignment'`).Scan(&failed))
	assert.Equal(t, 4, fitted)
	assert.Equal(t, 4, failed)
}

func TestRunFailFast(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, "ko ch1A ch2B ch3C ch4D.txt", -1)

	cfg := writeConfig(t, dir, "fail_fast: true\n")

	_, err := execute(t, "run", "--config", cfg, "--out", filepath.Join(dir, "r.db"), "--log-level", "error",
		filepath.Join(dir, "ko ch1A ch2B ch3C ch4D.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alignment")
}

func TestRunNothingFitted(t *testing.T) {
	dir := t.TempDir()
	writeRecording(t, dir, "ko ch1A ch2B ch3C ch4D.txt", -1)

	cfg := writeConfig(t, dir, "")

	_, err := execute(t, "run", "--config", cfg, "--out", filepath.Join(dir, "r.db"), "--log-level", "error", dir)
	require.ErrorIs(t, err, errNothingFitted)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "run", dir)
	require.Error(t, err, "missing --config")

	cfg := writeConfig(t, dir, "")
	_, err = execute(t, "run", "--config", cfg, filepath.Join(dir, "missing"))
	require.Error(t, err)

	_, err = execute(t, "run", "--config", cfg, "--log-level", "loud", dir)
	require.Error(t, err)
}
