/*
 * graph_test.go, part of adjmat.
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

package chemgraph

import (
	"testing"

	chem "github.com/rmera/adjmat"
	"gonum.org/v1/gonum/graph/topo"
)

func top(Te *testing.T, n int, bonds ...[2]int) *chem.Topology {
	Te.Helper()
	ats := make([]*chem.Atom, 0, n)
	for i := 0; i < n; i++ {
		ats = append(ats, &chem.Atom{ID: i + 1, Symbol: "C"})
	}
	T, err := chem.NewTopology(ats)
	if err != nil {
		Te.Fatal(err)
	}
	for _, b := range bonds {
		T.AddBond(b[0], b[1], 1, 0)
	}
	return T
}

func TestGraphMatchesTopology(Te *testing.T) {
	T := top(Te, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 2}, [2]int{1, 0})
	G := FromTopology(T)
	if G.Len() != 4 || G.Nodes().Len() != 4 {
		Te.Fatalf("Expected 4 atoms and nodes, got %d, %d", G.Len(), G.Nodes().Len())
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if G.BondedTo(i, j) != T.BondedTo(i, j) {
				Te.Errorf("Graph and topology disagree on %d, %d", i, j)
			}
		}
	}
	if d := G.Degree(1); d != 2 {
		Te.Errorf("Atom 1 should have 2 neighbours, got %d", d)
	}
	if d := G.Degree(2); d != 2 {
		Te.Errorf("Atom 2 should count its bond to itself, got degree %d", d)
	}
	if d := G.Degree(3); d != 0 {
		Te.Errorf("Atom 3 has no bonds, got degree %d", d)
	}
	if G.Atom(3) != T.Atom(3) {
		Te.Error("Node 3 should wrap atom 3")
	}
	if G.Atom(10) != nil {
		Te.Error("There is no node 10")
	}
}

// Two fragments should be two connected components, with the
// lone atom as a third one.
func TestComponents(Te *testing.T) {
	G := FromTopology(top(Te, 5, [2]int{0, 1}, [2]int{2, 3}))
	if cc := topo.ConnectedComponents(G); len(cc) != 3 {
		Te.Errorf("Expected 3 components, got %d", len(cc))
	}
}

func TestBondedToOutOfRange(Te *testing.T) {
	G := FromTopology(top(Te, 2))
	defer func() {
		if r := recover(); r == nil {
			Te.Error("BondedTo out of range should panic")
		}
	}()
	G.BondedTo(0, 2)
}
