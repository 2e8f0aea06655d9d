/*
 * doc.go, part of adjmat.
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
Package chem provides the atom and molecule structures used by adjmat, and
facilities for reading the molecule files it understands.

	**Capabilities**

	Reads XYZ (also multi-XYZ), PDB and MDL MOL/SDF (V2000) files.

	Reads gzip- and zstd-compressed versions of the above, recognised by
	a .gz or .zst/.zstd suffix.

	Takes bonds from the file when the format carries them (PDB CONECT
	records, MOL bond blocks). Otherwise assigns them with a simple
	distance criterion based on covalent radii, similar to that described
	in DOI:10.1186/1758-2946-3-33.

	Answers whether two atoms, given by their indexes in the molecule,
	are bonded.

A molecule is a Topology (atoms and bonds, which don't change in time)
plus one or more frames of coordinates (v3.Matrix). Functions that receive
an atom index out of range panic, since that means the calling program is
wrong. Everything related to reading files returns errors instead.
*/
package chem
