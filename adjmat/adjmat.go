/*
 * adjmat.go, part of adjmat.
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

/*
Package adjmat prints the adjacency matrix of a molecule: an NxN grid where
the element (i, j) is 1 if the atoms i and j are bonded, and 0 otherwise.

Anything that can report its number of atoms and whether two of them, given
by index, are bonded, can be printed. chem.Topology, chem.Molecule and
chemgraph.Graph all qualify.

The text output has one line per atom, with each element followed by a
single space:

	0 1
	1 0

(each line above ends in a space, which is kept for compatibility with
older output). Nothing is assumed about the diagonal or about symmetry:
whatever the molecule reports is printed.
*/
package adjmat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Bonder is the minimal view of a molecule needed to build its adjacency matrix.
type Bonder interface {
	//Len returns the number of atoms.
	Len() int
	//BondedTo returns true if the atoms with indexes i and j are bonded.
	//It is called for every 0 <= i, j < Len(), including i == j.
	BondedTo(i, j int) bool
}

// Fprint writes the adjacency matrix of mol to w, one row per line. A molecule
// without atoms produces no output. It returns the first write error found.
// Panics in mol propagate to the caller.
func Fprint(w io.Writer, mol Bonder) error {
	n := mol.Len()
	if n == 0 {
		return nil
	}
	out := bufio.NewWriter(w)
	row := make([]byte, 0, 2*n+1)
	for i := 0; i < n; i++ {
		row = row[:0]
		for j := 0; j < n; j++ {
			if mol.BondedTo(i, j) {
				row = append(row, '1', ' ')
			} else {
				row = append(row, '0', ' ')
			}
		}
		row = append(row, '\n')
		if _, err := out.Write(row); err != nil {
			return fmt.Errorf("adjmat: writing row %d: %w", i, err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("adjmat: writing matrix: %w", err)
	}
	return nil
}

// Sprint returns the adjacency matrix of mol as Fprint would write it.
func Sprint(mol Bonder) string {
	var b strings.Builder
	Fprint(&b, mol) //a strings.Builder never fails to write.
	return b.String()
}

// Dense returns the adjacency matrix of mol as a gonum matrix with 1 for bonded
// pairs and 0 elsewhere. For a molecule without atoms it returns an empty matrix.
func Dense(mol Bonder) *mat.Dense {
	n := mol.Len()
	if n == 0 {
		return &mat.Dense{}
	}
	M := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if mol.BondedTo(i, j) {
				M.Set(i, j, 1)
			}
		}
	}
	return M
}

// Symmetric returns true if the bond relation reported by mol is symmetric,
// i.e. BondedTo(i, j) == BondedTo(j, i) for all pairs.
func Symmetric(mol Bonder) bool {
	n := mol.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if mol.BondedTo(i, j) != mol.BondedTo(j, i) {
				return false
			}
		}
	}
	return true
}
