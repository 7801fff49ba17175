// SPDX-License-Identifier: MIT

// Package protocol loads assembly protocols: the dependency graph plus any
// input plates that are already laid out on the deck.
//
// Two encodings describe the same document.
//
// YAML:
//
//	nodes:
//	  - name: p1
//	    attributes: {type: part}
//	  - name: mix
//	    reagent: true
//	  - name: gene
//	edges:
//	  - {source: p1, destination: gene, attributes: {volume: 1}}
//	  - {source: mix, destination: gene, attributes: {volume: 8}}
//	plates:
//	  - id: stock
//	    role: input
//	    wells: {A1: p1}
//
// HCL:
//
//	node "p1" {
//	  attributes = { type = "part" }
//	}
//	node "mix" {
//	  reagent = true
//	}
//	node "gene" {}
//	edge {
//	  source      = "p1"
//	  destination = "gene"
//	  attributes  = { volume = 1 }
//	}
//	plate "stock" {
//	  role  = "input"
//	  wells = { A1 = "p1" }
//	}
//
// Nodes are added in declaration order, then edges in declaration order; both
// orders are significant to traversal. An edge naming an undeclared node
// fails with core.ErrNodeNotFound.
//
// Errors:
//
//	ErrUnknownFormat   - Load was given a path with an unsupported extension.
//	ErrInvalidProtocol - the document could not be decoded or is incomplete.
package protocol
