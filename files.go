/*
 * files.go, part of adjmat.
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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Formats understood by Load.
const (
	FormatXYZ = "xyz"
	FormatPDB = "pdb"
	FormatMol = "mol"
)

var extFormats = map[string]string{
	".xyz": FormatXYZ,
	".pdb": FormatPDB,
	".ent": FormatPDB,
	".mol": FormatMol,
	".sdf": FormatMol,
	".sd":  FormatMol,
}

// Compression suffixes understood by Load.
var extCompression = map[string]string{
	".gz":   "gzip",
	".zst":  "zstd",
	".zstd": "zstd",
}

// FileFormat returns the molecule format and the compression (the empty string if none)
// that Load would use for the file name. The format is the empty string if it can't be
// determined from the name.
func FileFormat(name string) (format, compression string) {
	ext := strings.ToLower(filepath.Ext(name))
	if c, ok := extCompression[ext]; ok {
		compression = c
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}
	return extFormats[ext], compression
}

// Load reads the molecule in the file name. The format is chosen from the file
// extension (see FileFormat). Bonds are taken from the file when the format has them,
// otherwise they are assigned from the coordinates of the first frame.
// All errors returned are of type *LoadError.
func Load(name string) (*Molecule, error) {
	format, compression := FileFormat(name)
	if format == "" {
		err := &LoadError{msg: UnsupportedFormat, fileName: name}
		err.Decorate("Load")
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		lerr := &LoadError{msg: UnableToOpen, fileName: name, format: format, err: err}
		lerr.Decorate("Load")
		return nil, lerr
	}
	defer f.Close()
	var r io.Reader = f
	switch compression {
	case "gzip":
		gz, err := gzip.NewReader(f)
		if err != nil {
			lerr := &LoadError{msg: Decompression, fileName: name, format: format, err: err}
			lerr.Decorate("Load")
			return nil, lerr
		}
		defer gz.Close()
		r = gz
	case "zstd":
		zs, err := zstd.NewReader(f)
		if err != nil {
			lerr := &LoadError{msg: Decompression, fileName: name, format: format, err: err}
			lerr.Decorate("Load")
			return nil, lerr
		}
		defer zs.Close()
		r = zs
	}
	mol, err := Read(r, format)
	if err != nil {
		lerr := asLoadError(err, name, format)
		lerr.Decorate("Load")
		return nil, lerr
	}
	return mol, nil
}

// Read reads a molecule in the given format (one of the Format constants) from r.
func Read(r io.Reader, format string) (*Molecule, error) {
	var mol *Molecule
	var err error
	switch format {
	case FormatXYZ:
		mol, err = ReadXYZ(r)
	case FormatPDB:
		mol, err = ReadPDB(r)
	case FormatMol:
		mol, err = ReadMol(r)
	default:
		return nil, newCError(UnsupportedFormat+": "+format, "Read")
	}
	return mol, errDecorate(err, "Read")
}

// lineReader reads a text file line by line, keeping count of the lines read
// to better report errors.
type lineReader struct {
	r *bufio.Reader
	n int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line, without the line terminator. It returns io.EOF only
// when there is nothing else to read, so a last line without a newline is not lost.
// Any other error is returned as is.
func (L *lineReader) next() (string, error) {
	line, err := L.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	L.n++
	return strings.TrimRight(line, "\r\n"), nil
}

// readErr returns io.ErrUnexpectedEOF instead of io.EOF, and any other
// error unchanged. For use where the file is not supposed to end.
func readErr(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
