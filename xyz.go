/*
 * xyz.go, part of adjmat.
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
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/adjmat/v3"
)

// ReadXYZ reads an XYZ or multi-XYZ file from r and returns a molecule with one
// frame per XYZ block. The atoms are taken from the first block, and all blocks
// must have the same number of atoms. Bonds are assigned from the first frame.
func ReadXYZ(r io.Reader) (*Molecule, error) {
	xyz := newLineReader(r)
	var atoms []*Atom
	coords := make([]*v3.Matrix, 0, 1)
	for frame := 0; ; frame++ {
		line, err := xyz.next()
		//blank lines between (or after) blocks are tolerated.
		for err == nil && strings.TrimSpace(line) == "" {
			line, err = xyz.next()
		}
		if err == io.EOF {
			if frame == 0 {
				return nil, newParseError("Empty XYZ file", xyz.n, "ReadXYZ", io.ErrUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return nil, newParseError("Unable to read line", xyz.n+1, "ReadXYZ", err)
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms < 0 {
			return nil, newParseError("Ill formatted XYZ file: bad atom count", xyz.n, "ReadXYZ", err)
		}
		if frame > 0 && natoms != len(atoms) {
			return nil, newParseError(fmt.Sprintf("Frame %d has %d atoms, expected %d", frame, natoms, len(atoms)), xyz.n, "ReadXYZ")
		}
		if _, err = xyz.next(); err != nil { //We don't care about the comment line
			return nil, newParseError("Missing comment line", xyz.n+1, "ReadXYZ", readErr(err))
		}
		c := make([]float64, natoms*3)
		for i := 0; i < natoms; i++ {
			line, err = xyz.next()
			if err != nil {
				return nil, newParseError(fmt.Sprintf("Expected %d atoms, found %d", natoms, i), xyz.n+1, "ReadXYZ", readErr(err))
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, newParseError("Ill formed atom line", xyz.n, "ReadXYZ")
			}
			for k := 0; k < 3; k++ {
				c[i*3+k], err = strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, newParseError("Ill formed coordinate", xyz.n, "ReadXYZ", err)
				}
			}
			if frame == 0 {
				atoms = append(atoms, &Atom{ID: i + 1, Symbol: normalizeSymbol(fields[0]), Name: fields[0]})
			}
		}
		if frame == 0 && atoms == nil {
			atoms = make([]*Atom, 0)
		}
		if natoms > 0 {
			m, err := v3.NewMatrix(c)
			if err != nil {
				return nil, errDecorate(err, "ReadXYZ")
			}
			coords = append(coords, m)
		}
	}
	return finishMolecule(atoms, coords, true, "ReadXYZ")
}

// finishMolecule builds a molecule from the atoms and coordinates read, and assigns
// bonds from the first frame if perceive is true.
func finishMolecule(atoms []*Atom, coords []*v3.Matrix, perceive bool, caller string) (*Molecule, error) {
	top, err := NewTopology(atoms)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	mol, err := NewMolecule(top, coords)
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	if perceive && len(coords) > 0 {
		if err := AssignBonds(coords[0], top); err != nil {
			return nil, errDecorate(err, caller)
		}
	}
	return mol, nil
}
