// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

type hclFile struct {
	Nodes  []hclNode  `hcl:"node,block"`
	Edges  []hclEdge  `hcl:"edge,block"`
	Plates []hclPlate `hcl:"plate,block"`
}

type hclNode struct {
	Name       string         `hcl:"name,label"`
	Reagent    bool           `hcl:"reagent,optional"`
	Attributes hcl.Expression `hcl:"attributes,optional"`
}

type hclEdge struct {
	Source      string         `hcl:"source"`
	Destination string         `hcl:"destination"`
	Attributes  hcl.Expression `hcl:"attributes,optional"`
}

type hclPlate struct {
	ID    string            `hcl:"id,label"`
	Role  string            `hcl:"role,optional"`
	Wells map[string]string `hcl:"wells,optional"`
}

// ParseHCL decodes an HCL protocol; filename is used in diagnostics.
func ParseHCL(data []byte, filename string) (*Protocol, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %s", ErrInvalidProtocol, diags.Error())
	}

	var raw hclFile
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: hcl: %s", ErrInvalidProtocol, diags.Error())
	}

	doc := document{
		Nodes:  make([]nodeSpec, 0, len(raw.Nodes)),
		Edges:  make([]edgeSpec, 0, len(raw.Edges)),
		Plates: make([]plateSpec, 0, len(raw.Plates)),
	}
	for _, n := range raw.Nodes {
		attrs, err := attributes(n.Attributes)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q: %w", ErrInvalidProtocol, n.Name, err)
		}
		doc.Nodes = append(doc.Nodes, nodeSpec{Name: n.Name, Reagent: n.Reagent, Attributes: attrs})
	}
	for i, e := range raw.Edges {
		attrs, err := attributes(e.Attributes)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidProtocol, i, err)
		}
		doc.Edges = append(doc.Edges, edgeSpec{Source: e.Source, Destination: e.Destination, Attributes: attrs})
	}
	for _, p := range raw.Plates {
		doc.Plates = append(doc.Plates, plateSpec{ID: p.ID, Role: p.Role, Wells: p.Wells})
	}

	return doc.build()
}

// attributes evaluates an optional object expression into a Go map.
func attributes(expr hcl.Expression) (map[string]any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("attributes: %s", diags.Error())
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("attributes must be an object, got %s", val.Type().FriendlyName())
	}
	v, err := fromCty(val)
	if err != nil {
		return nil, fmt.Errorf("attributes: %w", err)
	}

	return v.(map[string]any), nil
}

// fromCty converts a cty value to plain Go. Integral numbers become int64,
// other numbers float64.
func fromCty(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty == cty.Number:
		return number(val.AsBigFloat()), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			gv, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = gv
		}
		return out, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			gv, err := fromCty(v)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	}

	return nil, fmt.Errorf("unsupported type %s", ty.FriendlyName())
}

func number(bf *big.Float) any {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return i
		}
	}
	f, _ := bf.Float64()

	return f
}
