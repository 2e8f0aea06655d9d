/*
 * atomicdata.go, part of adjmat.
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
	"strings"
	"unicode"
)

// Covalent radii in A, from Cordero et al., 2008 (DOI:10.1039/B801115J)
// Note that just common "bio-elements" and a few others are present.
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31 in the paper. H only keeps one bond anyway, so a longer radius is harmless.
	"B":  0.84,
	"C":  0.76, //sp3
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"K":  2.03,
	"Ca": 1.76,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  //hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Se": 1.2,
	"Br": 1.2,
	"Be": 0.96,
	"I":  1.39,
}

// Maximum number of bonds an atom can keep after distance-based
// assignment. Elements not present are not checked.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

// normalizeSymbol returns sym with the first letter in upper case
// and the rest in lower case, so "CL" and "cl" both become "Cl".
func normalizeSymbol(sym string) string {
	sym = strings.TrimSpace(sym)
	if sym == "" {
		return sym
	}
	r := []rune(strings.ToLower(sym))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// symbolFromName tries to guess a chemical element symbol from a PDB atom name.
// Mostly based on AMBER names. It only deals with some common bio-elements,
// and returns the empty string if it can't guess.
func symbolFromName(name string) string {
	name = strings.ToUpper(strings.TrimLeftFunc(strings.TrimSpace(name), unicode.IsDigit))
	if name == "" {
		return ""
	}
	//two-letter elements that are also plausible as ion names
	switch name {
	case "CU", "CO", "CL", "NA", "ZN", "FE", "MG", "MN", "CA", "SE", "BR":
		if name == "CA" {
			//A CA is almost always an alpha carbon. Lone calcium ions
			//should come with the element columns filled.
			return "C"
		}
		return normalizeSymbol(name)
	}
	if len(name) == 4 || name[0] == 'H' {
		//I think only Hs can have 4-char names in amber.
		return "H"
	}
	switch name[0] {
	case 'C', 'N', 'O', 'P', 'S', 'F', 'I', 'K':
		return string(name[0])
	}
	return ""
}
