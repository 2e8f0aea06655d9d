/*
 * mol.go, part of adjmat.
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

// molInt parses the fixed-width integer field between columns from and to of line.
func molInt(line string, from, to int) (int, error) {
	return strconv.Atoi(pdbField(line, from, to))
}

// ReadMol reads an MDL MOL file (V2000), or the first record of an SDF file, from r.
// The bonds are taken from the bond block, with atom indexes starting from 1 as in
// the file. Anything after the bond block is ignored.
func ReadMol(r io.Reader) (*Molecule, error) {
	mol := newLineReader(r)
	//header: name, program/timestamp line, comment.
	for i := 0; i < 3; i++ {
		if _, err := mol.next(); err != nil {
			return nil, newParseError("Unexpected end of header", mol.n+1, "ReadMol", readErr(err))
		}
	}
	counts, err := mol.next()
	if err != nil {
		return nil, newParseError("Missing counts line", mol.n+1, "ReadMol", readErr(err))
	}
	if strings.Contains(counts, "V3000") {
		return nil, newParseError("V3000 MOL files are not supported", mol.n, "ReadMol")
	}
	natoms, err := molInt(counts, 0, 3)
	if err != nil || natoms < 0 {
		return nil, newParseError("Bad atom count", mol.n, "ReadMol", err)
	}
	nbonds, err := molInt(counts, 3, 6)
	if err != nil || nbonds < 0 {
		return nil, newParseError("Bad bond count", mol.n, "ReadMol", err)
	}
	atoms := make([]*Atom, 0, natoms)
	c := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err := mol.next()
		if err != nil {
			return nil, newParseError(fmt.Sprintf("Expected %d atoms, found %d", natoms, i), mol.n+1, "ReadMol", readErr(err))
		}
		if len(line) < 32 {
			return nil, newParseError("Atom line too short", mol.n, "ReadMol")
		}
		for k := 0; k < 3; k++ {
			c[i*3+k], err = strconv.ParseFloat(pdbField(line, 10*k, 10*(k+1)), 64)
			if err != nil {
				return nil, newParseError("Ill formed coordinate", mol.n, "ReadMol", err)
			}
		}
		sym := pdbField(line, 31, 34)
		atoms = append(atoms, &Atom{ID: i + 1, Name: sym, Symbol: normalizeSymbol(sym)})
	}
	coords := make([]*v3.Matrix, 0, 1)
	if natoms > 0 {
		m, err := v3.NewMatrix(c)
		if err != nil {
			return nil, errDecorate(err, "ReadMol")
		}
		coords = append(coords, m)
	}
	ret, err := finishMolecule(atoms, coords, false, "ReadMol")
	if err != nil {
		return nil, err
	}
	for k := 0; k < nbonds; k++ {
		line, err := mol.next()
		if err != nil {
			return nil, newParseError(fmt.Sprintf("Expected %d bonds, found %d", nbonds, k), mol.n+1, "ReadMol", readErr(err))
		}
		i, err1 := molInt(line, 0, 3)
		j, err2 := molInt(line, 3, 6)
		if err1 != nil || err2 != nil {
			return nil, newParseError("Ill formed bond line", mol.n, "ReadMol")
		}
		if i < 1 || i > natoms || j < 1 || j > natoms {
			return nil, newParseError(fmt.Sprintf("Bond between atoms %d and %d out of range (%d atoms)", i, j, natoms), mol.n, "ReadMol")
		}
		var order float64
		if o, err := molInt(line, 6, 9); err == nil {
			order = float64(o)
		}
		ret.AddBond(i-1, j-1, order, 0)
	}
	return ret, nil
}
