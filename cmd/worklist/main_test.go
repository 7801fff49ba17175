// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return recs
}

func TestRun_WritesWorklistAndPlates(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{
		"-config", filepath.Join("testdata", "quiet.yaml"),
		"-out", outDir,
		filepath.Join("testdata", "assembly.yaml"),
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "planned 4 operations on 3 plates")

	wl := readCSV(t, filepath.Join(outDir, worklistFile))
	require.Len(t, wl, 5)
	header := wl[0]
	require.Equal(t, []string{"SourcePlateBarcode", "SourcePlateWell", "DestinationPlateBarcode", "DestinationPlateWell"},
		header[len(header)-4:])

	plates := readCSV(t, filepath.Join(outDir, platesFile))
	require.Equal(t, [][]string{
		{"plate", "role", "well", "component"},
		{"input", "input", "A1", "a"},
		{"input", "input", "B1", "b"},
		{"MastermixTrough", "MastermixTrough", "A1", "mix"},
		{"output", "output", "A1", "g1"},
		{"output", "output", "B1", "g2"},
		{"output", "output", "C1", "g3"},
	}, plates)
}

func TestRun_SpreadAndShowPlates(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	out := &bytes.Buffer{}
	err := run(context.Background(), out, []string{
		"-config", filepath.Join("testdata", "quiet.yaml"),
		"-out", outDir,
		"-spread", "input",
		"-show-plates",
		"-protocol", filepath.Join("testdata", "assembly.yaml"),
	})
	require.NoError(t, err)
	require.Contains(t, out.String(), "MastermixTrough")
	require.Contains(t, out.String(), "mix")

	wl := readCSV(t, filepath.Join(outDir, worklistFile))
	col := -1
	for i, h := range wl[0] {
		if h == "src_name" {
			col = i
		}
	}
	require.NotEqual(t, -1, col)

	var srcs []string
	for _, rec := range wl[1:] {
		srcs = append(srcs, rec[col])
	}
	require.Equal(t, []string{"mix", "a", "b", "a"}, srcs)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), out, []string{"-h"}))
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_MissingProtocol(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, nil)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_BadConfig(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{
		"-log-level", "loud",
		filepath.Join("testdata", "assembly.yaml"),
	})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_UnknownSpreadPlate(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, []string{
		"-config", filepath.Join("testdata", "quiet.yaml"),
		"-out", t.TempDir(),
		"-spread", "shelf",
		filepath.Join("testdata", "assembly.yaml"),
	})
	require.Error(t, err)
}
