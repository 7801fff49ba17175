// SPDX-License-Identifier: MIT

package protocol_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/assemblygenie/core"
	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/protocol"
	"github.com/katalvlaran/assemblygenie/worklist"
)

// LoadSuite runs the same expectations against both encodings.
type LoadSuite struct {
	suite.Suite
	path string
}

func (s *LoadSuite) load() *protocol.Protocol {
	p, err := protocol.Load(s.path)
	require.NoError(s.T(), err)

	return p
}

func (s *LoadSuite) TestGraph() {
	require := require.New(s.T())
	g := s.load().Graph

	var names []string
	for _, n := range g.Nodes() {
		names = append(names, n.Name)
	}
	require.Equal([]string{"p1", "p2", "mix", "gene"}, names)
	require.Equal(3, g.EdgeCount())

	mix, err := g.Lookup("mix")
	require.NoError(err)
	n, err := g.Node(mix)
	require.NoError(err)
	require.True(n.Reagent)

	p2, err := g.Lookup("p2")
	require.NoError(err)
	n, err = g.Node(p2)
	require.NoError(err)
	require.Equal("part", n.Attrs["type"])
	require.Equal("B3", n.Attrs["well"])
}

func (s *LoadSuite) TestEdgeAttributes() {
	require := require.New(s.T())
	edges := s.load().Graph.Edges()
	require.Len(edges, 3)

	require.EqualValues(1, edges[0].Attrs["volume"])
	require.Equal(1.5, edges[1].Attrs["volume"])
	require.EqualValues(8, edges[2].Attrs["volume"])
}

func (s *LoadSuite) TestSeedAndPlan() {
	require := require.New(s.T())
	p := s.load()
	require.Len(p.Plates, 1)
	require.Equal("stock", p.Plates[0].ID)
	require.Equal(plate.Input(), p.Plates[0].Role)

	reg := plate.NewRegistry()
	require.NoError(p.Seed(reg))

	wl, err := worklist.Generate(context.Background(), p.Graph, worklist.WithRegistry(reg))
	require.NoError(err)

	got := make(map[string]string)
	for _, r := range wl.Rows {
		got[r.SrcName] = r.Location.SourcePlate + ":" + r.Location.SourceWell
	}
	require.Equal(map[string]string{
		"p1":  "stock:H12",
		"p2":  "stock:B3",
		"mix": "MastermixTrough:A1",
	}, got)
}

func TestLoadYAML(t *testing.T) {
	suite.Run(t, &LoadSuite{path: filepath.Join("testdata", "assembly.yaml")})
}

func TestLoadHCL(t *testing.T) {
	suite.Run(t, &LoadSuite{path: filepath.Join("testdata", "assembly.hcl")})
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := protocol.Load("assembly.json")
	require.ErrorIs(t, err, protocol.ErrUnknownFormat)
}

func TestLoad_Missing(t *testing.T) {
	_, err := protocol.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParseYAML_UnknownNode(t *testing.T) {
	_, err := protocol.ParseYAML([]byte(`
nodes:
  - name: a
edges:
  - {source: a, destination: b}
`))
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestParseYAML_UnknownField(t *testing.T) {
	_, err := protocol.ParseYAML([]byte(`
nodes:
  - name: a
    colour: red
`))
	require.ErrorIs(t, err, protocol.ErrInvalidProtocol)
}

func TestParseYAML_EdgeNeedsEnds(t *testing.T) {
	_, err := protocol.ParseYAML([]byte(`
nodes:
  - name: a
edges:
  - {source: a}
`))
	require.ErrorIs(t, err, protocol.ErrInvalidProtocol)
}

func TestParseYAML_BadRole(t *testing.T) {
	_, err := protocol.ParseYAML([]byte(`
plates:
  - id: x
    role: shelf
`))
	require.ErrorIs(t, err, plate.ErrUnknownRole)
}

func TestParseHCL_Syntax(t *testing.T) {
	_, err := protocol.ParseHCL([]byte(`node "a" {`), "broken.hcl")
	require.ErrorIs(t, err, protocol.ErrInvalidProtocol)
}

func TestParseHCL_AttributesMustBeObject(t *testing.T) {
	_, err := protocol.ParseHCL([]byte(`
node "a" {
  attributes = "nope"
}
`), "bad.hcl")
	require.ErrorIs(t, err, protocol.ErrInvalidProtocol)
}

func TestParseHCL_NestedAttributes(t *testing.T) {
	p, err := protocol.ParseHCL([]byte(`
node "a" {
  attributes = {
    tags  = ["x", "y"]
    meta  = { lot = 42 }
    ratio = 0.25
  }
}
`), "nested.hcl")
	require.NoError(t, err)

	id, err := p.Graph.Lookup("a")
	require.NoError(t, err)
	n, err := p.Graph.Node(id)
	require.NoError(t, err)
	require.Equal(t, []any{"x", "y"}, n.Attrs["tags"])
	require.Equal(t, map[string]any{"lot": int64(42)}, n.Attrs["meta"])
	require.Equal(t, 0.25, n.Attrs["ratio"])
}

func TestSeed_DuplicatePlate(t *testing.T) {
	p, err := protocol.ParseYAML([]byte(`
plates:
  - id: stock
  - id: stock
`))
	require.NoError(t, err)
	require.ErrorIs(t, p.Seed(plate.NewRegistry()), plate.ErrDuplicatePlate)
}
