// SPDX-License-Identifier: MIT

package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/export"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
	"github.com/katalvlaran/assemblygenie/worklist"
)

func planned(t *testing.T) *worklist.Worklist {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddNode("p1", core.WithAttrs(core.Attrs{"type": "part"}))
	require.NoError(t, err)
	_, err = g.AddNode("mix", core.WithReagent())
	require.NoError(t, err)
	_, err = g.AddNode("gene")
	require.NoError(t, err)
	_, err = g.Connect("p1", "gene", core.Attrs{"volume": 1.5})
	require.NoError(t, err)
	_, err = g.Connect("mix", "gene", core.Attrs{"volume": 8})
	require.NoError(t, err)

	wl, err := worklist.Generate(context.Background(), g)
	require.NoError(t, err)

	return wl
}

func TestWriteWorklist(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteWorklist(&buf, planned(t)))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, []string{
		"dest_is_reagent", "dest_name", "dest_well", "level",
		"src_is_input", "src_is_reagent", "src_name", "src_type", "src_well", "volume",
		"SourcePlateBarcode", "SourcePlateWell", "DestinationPlateBarcode", "DestinationPlateWell",
	}, recs[0])
	assert.Equal(t, []string{
		"false", "gene", "", "0", "false", "true", "mix", "", "", "8",
		"MastermixTrough", "A1", "output", "A1",
	}, recs[1])
	assert.Equal(t, []string{
		"false", "gene", "", "0", "true", "false", "p1", "part", "", "1.5",
		"input", "A1", "output", "A1",
	}, recs[2])
}

func TestWriteWorklist_Nil(t *testing.T) {
	assert.ErrorIs(t, export.WriteWorklist(&bytes.Buffer{}, nil), export.ErrNilWorklist)
}

func TestWritePlate(t *testing.T) {
	reg := plate.NewRegistry()
	_, err := reg.AddPlate("stock", plate.Input(), well.Format{})
	require.NoError(t, err)
	_, err = reg.Place("stock", "B1", "p2")
	require.NoError(t, err)
	_, err = reg.Place("stock", "A1", "p1")
	require.NoError(t, err)

	pl, ok := reg.Layout().Plate("stock")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, export.WritePlate(&buf, pl))
	assert.Equal(t, "well,component\nA1,p1\nB1,p2\n", buf.String())
}

func TestWriteLayout(t *testing.T) {
	wl := planned(t)

	var buf bytes.Buffer
	require.NoError(t, export.WriteLayout(&buf, wl.Registry.Layout()))
	assert.Equal(t,
		"plate,role,well,component\n"+
			"input,input,A1,p1\n"+
			"MastermixTrough,MastermixTrough,A1,mix\n"+
			"output,output,A1,gene\n",
		buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLayout_WriterError(t *testing.T) {
	err := export.WriteLayout(failWriter{}, plate.Layout{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
