/*
 * graph.go, part of adjmat.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemgraph exposes the bonds of a chem.Topology as an undirected
// Gonum graph, where each node ID is the index of an atom in the topology.
package chemgraph

import (
	"fmt"

	chem "github.com/rmera/adjmat"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Atom is a graph node wrapping a chem.Atom.
type Atom struct {
	*chem.Atom
}

// ID returns the index of the atom in its topology.
func (A Atom) ID() int64 {
	return int64(A.Index())
}

// Graph implements gonum's graph.Undirected for a topology.
// A simple graph can't have self-loops, so bonds from an atom
// to itself are kept apart.
type Graph struct {
	*simple.UndirectedGraph
	top   *chem.Topology
	loops map[int64]bool
}

// FromTopology builds the graph for top. There is one node for each atom,
// including atoms without bonds, and one edge for each bonded pair.
func FromTopology(top *chem.Topology) *Graph {
	G := &Graph{UndirectedGraph: simple.NewUndirectedGraph(), top: top, loops: make(map[int64]bool)}
	for i := 0; i < top.Len(); i++ {
		G.AddNode(Atom{top.Atom(i)})
	}
	for _, b := range top.Bonds() {
		from, to := int64(b.At1.Index()), int64(b.At2.Index())
		if from == to {
			G.loops[from] = true
			continue
		}
		//the topology may list the same pair twice. simple graphs keep one edge.
		G.SetEdge(G.NewEdge(G.Node(from), G.Node(to)))
	}
	return G
}

// Len returns the number of atoms (nodes) in the graph.
func (G *Graph) Len() int {
	return G.top.Len()
}

// BondedTo returns true if the atoms with indexes i and j are bonded.
// Panics if either index is out of range.
func (G *Graph) BondedTo(i, j int) bool {
	if i < 0 || i >= G.Len() || j < 0 || j >= G.Len() {
		panic(fmt.Sprintf("chemgraph: atom pair (%d, %d) out of range (%d atoms)", i, j, G.Len()))
	}
	if i == j {
		return G.loops[int64(i)]
	}
	return G.HasEdgeBetween(int64(i), int64(j))
}

// Degree returns the number of atoms bonded to atom i. An atom bonded to
// itself counts itself once.
func (G *Graph) Degree(i int) int {
	d := G.From(int64(i)).Len()
	if G.loops[int64(i)] {
		d++
	}
	return d
}

// Atom returns the atom for the node with the given ID, or nil
// if there is no such node.
func (G *Graph) Atom(id int64) *chem.Atom {
	n := G.Node(id)
	if n == nil {
		return nil
	}
	return n.(Atom).Atom
}

var _ graph.Undirected = (*Graph)(nil)
