/*
 * pdb.go, part of adjmat.
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

// pdbField returns the trimmed content of line between the (0-based) columns
// from and to, cut to the length of the line.
func pdbField(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

// readPDBAtomLine parses a valid ATOM or HETATM line of a PDB file and returns an Atom
// with the info except for the coordinates, which are returned separately.
// If full is false, only the coordinates are read and the returned atom is nil.
func readPDBAtomLine(line string, full bool) (*Atom, [3]float64, error) {
	var c [3]float64
	var err error
	if len(line) < 54 {
		return nil, c, fmt.Errorf("ATOM/HETATM line too short (%d characters)", len(line))
	}
	for k := 0; k < 3; k++ {
		c[k], err = strconv.ParseFloat(pdbField(line, 30+8*k, 38+8*k), 64)
		if err != nil {
			return nil, c, err
		}
	}
	if !full {
		return nil, c, nil
	}
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	if atom.ID, err = strconv.Atoi(pdbField(line, 6, 11)); err != nil {
		return nil, c, err
	}
	atom.Name = pdbField(line, 12, 16)
	atom.Molname = pdbField(line, 17, 20)
	atom.Chain = pdbField(line, 21, 22)
	if resid := pdbField(line, 22, 26); resid != "" {
		if atom.MolID, err = strconv.Atoi(resid); err != nil {
			return nil, c, err
		}
	}
	atom.Symbol = normalizeSymbol(pdbField(line, 76, 78))
	//we try to guess the symbol from the atom name, if it has not been read.
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.Name)
	}
	return atom, c, nil
}

// readConect parses a CONECT record and returns the serial numbers in it,
// the first being the central atom.
func readConect(line string) ([]int, error) {
	serials := make([]int, 0, 5)
	for from := 6; from < len(line) && from < 31; from += 5 {
		f := pdbField(line, from, from+5)
		if f == "" {
			continue
		}
		s, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		serials = append(serials, s)
	}
	if len(serials) == 0 {
		return nil, fmt.Errorf("empty CONECT record")
	}
	return serials, nil
}

// ReadPDB reads a PDB file from r. Each MODEL becomes a frame; atom information
// is only read from the first one. If the file has CONECT records, the bonds are
// taken from them. Otherwise they are assigned from the first frame.
func ReadPDB(r io.Reader) (*Molecule, error) {
	pdb := newLineReader(r)
	atoms := make([]*Atom, 0)
	frames := [][]float64{make([]float64, 0)}
	firstModel := true //are we reading the first model? if not we only save coordinates
	conects := make([][]int, 0)
	conectLines := make([]int, 0)
	for {
		line, err := pdb.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newParseError("Unable to read line", pdb.n+1, "ReadPDB", err)
		}
		switch {
		case strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM"):
			at, c, err := readPDBAtomLine(line, firstModel)
			if err != nil {
				return nil, newParseError("Ill formed ATOM/HETATM record", pdb.n, "ReadPDB", err)
			}
			if firstModel {
				atoms = append(atoms, at)
			}
			frames[len(frames)-1] = append(frames[len(frames)-1], c[:]...)
		case strings.HasPrefix(line, "ENDMDL"):
			if len(atoms) > 0 {
				firstModel = false
			}
		case strings.HasPrefix(line, "MODEL"):
			if !firstModel && len(frames[len(frames)-1]) > 0 {
				frames = append(frames, make([]float64, 0, len(atoms)*3))
			}
		case strings.HasPrefix(line, "CONECT"):
			s, err := readConect(line)
			if err != nil {
				return nil, newParseError("Ill formed CONECT record", pdb.n, "ReadPDB", err)
			}
			conects = append(conects, s)
			conectLines = append(conectLines, pdb.n)
		}
	}
	coords := make([]*v3.Matrix, 0, len(frames))
	for i, f := range frames {
		if len(f) == 0 {
			continue
		}
		if len(f) != len(atoms)*3 {
			return nil, newCError(fmt.Sprintf("Model %d has %d atoms, expected %d", i+1, len(f)/3, len(atoms)), "ReadPDB")
		}
		m, err := v3.NewMatrix(f)
		if err != nil {
			return nil, errDecorate(err, "ReadPDB")
		}
		coords = append(coords, m)
	}
	mol, err := finishMolecule(atoms, coords, len(conects) == 0, "ReadPDB")
	if err != nil {
		return nil, err
	}
	if err := conectBonds(mol.Topology, conects, conectLines); err != nil {
		return nil, errDecorate(err, "ReadPDB")
	}
	return mol, nil
}

// conectBonds adds to top the bonds listed in the CONECT records given.
// Bonds listed more than once (they usually are, once for each atom) are added only once.
func conectBonds(top *Topology, conects [][]int, lines []int) error {
	if len(conects) == 0 {
		return nil
	}
	serial2index := make(map[int]int, top.Len())
	for i, at := range top.Atoms {
		serial2index[at.ID] = i
	}
	for k, s := range conects {
		i, ok := serial2index[s[0]]
		if !ok {
			return newParseError(fmt.Sprintf("CONECT refers to non-existent atom %d", s[0]), lines[k], "conectBonds")
		}
		for _, partner := range s[1:] {
			j, ok := serial2index[partner]
			if !ok {
				return newParseError(fmt.Sprintf("CONECT refers to non-existent atom %d", partner), lines[k], "conectBonds")
			}
			if top.BondedTo(i, j) {
				continue
			}
			top.AddBond(i, j, 0, 0)
		}
	}
	return nil
}
