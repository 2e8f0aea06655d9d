/*
 * interfaces.go, part of adjmat.
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

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// BondedAtomer is an Atomer that can also tell whether two
// of its atoms, given by index, are bonded.
type BondedAtomer interface {
	Atomer
	BondedTo(i, j int) bool
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type. The decoration slice contains a list of functions in the calling stack,
// the innermost first. Errors that wrap a lower-level cause return it from Unwrap, so errors.Is and errors.As
// also work.
type Error interface {
	Error() string
	Decorate(string) []string //If passed an empty string, it just returns the current value.
}

// FileError is the interface for errors related to reading a file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
