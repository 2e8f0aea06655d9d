/*
 * chem.go, part of adjmat.
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

package chem

import (
	"fmt"

	v3 "github.com/rmera/adjmat/v3"
)

// Atom contains the information read for each atom, except for the coordinates,
// which are kept in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int //the serial number in the file, starting from 1.
	Molname string
	MolID   int
	Chain   string
	Symbol  string
	Het     bool //is hetatm in the pdb file?
	Bonds   []*Bond
	index   int
}

// Index returns the position of the atom in the topology it belongs to.
func (A *Atom) Index() int {
	return A.index
}

// Copy returns a copy of the Atom object, without bonds.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	return &Atom{Name: A.Name, ID: A.ID, Molname: A.Molname, MolID: A.MolID,
		Chain: A.Chain, Symbol: A.Symbol, Het: A.Het, index: A.index}
}

/*****Topology type***/

// Topology contains the information about a molecule which is not expected to change
// in time, i.e. everything except for coordinates.
type Topology struct {
	Atoms     []*Atom
	nextIndex int //index for the next bond added
}

// NewTopology returns a topology with the atoms ats, and sets their indexes
// to their positions in ats. It returns an error if ats is nil.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, newCError("Supplied a nil atom slice", "NewTopology")
	}
	T := &Topology{Atoms: ats}
	T.FillIndexes()
	return T, nil
}

// FillIndexes sets the index of each atom to its position in the topology.
func (T *Topology) FillIndexes() {
	for i, at := range T.Atoms {
		at.index = i
	}
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic(fmt.Sprintf("Topology: Requested Atom %d out of bounds (%d atoms)", i, T.Len()))
	}
	return T.Atoms[i]
}

// AddBond bonds the atoms i and j, and returns the new bond.
// If i == j the bond is added only once to the atom's list.
// It doesn't check whether the atoms were already bonded. Panics if
// i or j are out of range.
func (T *Topology) AddBond(i, j int, order, dist float64) *Bond {
	at1 := T.Atom(i)
	at2 := T.Atom(j)
	b := &Bond{Index: T.nextIndex, At1: at1, At2: at2, Order: order, Dist: dist}
	T.nextIndex++
	at1.Bonds = append(at1.Bonds, b)
	if at1 != at2 {
		at2.Bonds = append(at2.Bonds, b)
	}
	return b
}

// BondedTo returns true if the atoms with indexes i and j share a bond.
// The diagonal is not special: BondedTo(i, i) is true only if a bond from i to
// itself was read. Panics if i or j are out of range.
func (T *Topology) BondedTo(i, j int) bool {
	at := T.Atom(i)
	T.Atom(j) //bound check only
	for _, b := range at.Bonds {
		if b.Cross(at).index == j {
			return true
		}
	}
	return false
}

// Bonds returns all the bonds in the topology, each once, sorted by atom index
// and then by the order in which they were added to the atom.
func (T *Topology) Bonds() []*Bond {
	seen := make(map[*Bond]bool)
	ret := make([]*Bond, 0, T.Len())
	for _, at := range T.Atoms {
		for _, b := range at.Bonds {
			if seen[b] {
				continue
			}
			seen[b] = true
			ret = append(ret, b)
		}
	}
	return ret
}

/**Type Molecule**/

// Molecule contains all the info for a molecule in one or more states. The
// coordinates, which change between states, are kept apart from the topology.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

// NewMolecule makes a molecule with topology top and coordinates coords. It returns
// an error if top is nil or if the number of coordinates in any frame doesn't match
// the number of atoms.
func NewMolecule(top *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if top == nil {
		return nil, newCError("Supplied a nil Topology", "NewMolecule")
	}
	for i, c := range coords {
		if c == nil || c.NVecs() != top.Len() {
			n := 0
			if c != nil {
				n = c.NVecs()
			}
			return nil, newCError(fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, top.Len(), n), "NewMolecule")
		}
	}
	return &Molecule{Topology: top, Coords: coords}, nil
}

// LenFrames returns the number of frames in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}
