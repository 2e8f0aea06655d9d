/*
 * bonds.go, part of adjmat.
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
	"sort"

	v3 "github.com/rmera/adjmat/v3"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Bond joins two atoms. Bonds are not directional.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64 //0 if the bond was read from the file
	Order float64 //Order 0 means undetermined
}

// Cross returns the atom at the other side of the bond from origin.
// For a bond from an atom to itself, it returns the same atom.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //a programming error, so a panic is warranted.
}

// takefromslice returns a new *Bond slice with b removed.
func takefromslice(bonds []*Bond, b *Bond) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			newb = append(newb, v)
		}
	}
	return newb
}

// RemoveBond removes b from the bond lists of both its atoms.
// It returns an error if b was not present in one of them.
func RemoveBond(b *Bond) error {
	lenb1 := len(b.At1.Bonds)
	b.At1.Bonds = takefromslice(b.At1.Bonds, b)
	missing := make([]int, 0, 2)
	if len(b.At1.Bonds) == lenb1 {
		missing = append(missing, b.At1.index)
	}
	if b.At2 != b.At1 {
		lenb2 := len(b.At2.Bonds)
		b.At2.Bonds = takefromslice(b.At2.Bonds, b)
		if len(b.At2.Bonds) == lenb2 {
			missing = append(missing, b.At2.index)
		}
	}
	if len(missing) > 0 {
		return newCError(fmt.Sprintf("Failed to remove bond Index:%d from atom(s) %v", b.Index, missing), "RemoveBond")
	}
	return nil
}

// AssignBonds assigns bonds to the atoms in mol based on a simple distance
// criterion, similar to that described in DOI:10.1186/1758-2946-3-33.
// coord are the coordinates for the atoms in mol. Atoms that end up with more
// bonds than their element allows lose the longest ones.
// It might get slow for large systems. It's really not thought for proteins
// or macromolecules.
func AssignBonds(coord *v3.Matrix, mol *Topology) error {
	tot := mol.Len()
	if tot == 0 {
		return nil
	}
	if coord == nil || coord.NVecs() != tot {
		return newCError("Number of coordinates doesn't match number of atoms", "AssignBonds")
	}
	mol.FillIndexes()
	covs := make([]float64, tot)
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		covs[i] = symbolCovrad[at.Symbol]
		if covs[i] == 0 {
			return newCError(fmt.Sprintf("Couldn't find the covalent radius for %q (atom %d)", at.Symbol, i), "AssignBonds")
		}
	}
	t := v3.Zeros(1)
	for i := 0; i < tot; i++ {
		for j := i + 1; j < tot; j++ {
			d := coord.Dist(i, j, t)
			if d < covs[i]+covs[j]+bondtol && d > tooclose {
				mol.AddBond(i, j, 0, d)
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.SliceStable(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			if err := RemoveBond(at.Bonds[len(at.Bonds)-1]); err != nil { //we remove the longest bond
				return errDecorate(err, "AssignBonds")
			}
		}
	}
	return nil
}
