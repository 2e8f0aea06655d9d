/*
 * errors.go, part of adjmat.
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
	"errors"
	"fmt"
	"strings"
)

// CError is the general error type of the package. It implements Error.
type CError struct {
	msg  string
	deco []string
	err  error //the lower-level cause, if any
}

// newCError returns a CError decorated with caller.
func newCError(msg, caller string, cause ...error) *CError {
	err := &CError{msg: msg, deco: []string{caller}}
	if len(cause) > 0 {
		err.err = cause[0]
	}
	return err
}

func (err *CError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.err.Error())
	}
	return err.msg
}

// Decorate will add dec to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Unwrap returns the lower-level cause of the error, or nil.
func (err *CError) Unwrap() error { return err.err }

// LoadError is returned by Load for any problem opening, decompressing or
// parsing a molecule file. It implements FileError.
type LoadError struct {
	msg      string
	fileName string
	format   string
	line     int //0 if the error is not associated to a line
	deco     []string
	err      error
}

func (err *LoadError) Error() string {
	var b strings.Builder
	format := err.format
	if format == "" {
		format = "molecule"
	}
	fmt.Fprintf(&b, "%s file %s", format, err.fileName)
	if err.line > 0 {
		fmt.Fprintf(&b, ", line %d", err.line)
	}
	fmt.Fprintf(&b, ": %s", err.msg)
	if err.err != nil {
		fmt.Fprintf(&b, ": %s", err.err.Error())
	}
	return b.String()
}

// Decorate will add dec to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *LoadError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the name of the file that could not be loaded.
func (err *LoadError) FileName() string { return err.fileName }

// Format returns the file format that was being read, or the empty string if
// it could not be determined.
func (err *LoadError) Format() string { return err.format }

// Line returns the line of the (decompressed) file where the problem was found, or 0.
func (err *LoadError) Line() int { return err.line }

// Critical always returns true. A molecule that fails to load is never usable.
func (err *LoadError) Critical() bool { return true }

// Unwrap returns the lower-level cause of the error, or nil.
func (err *LoadError) Unwrap() error { return err.err }

// Messages for LoadError
const (
	UnableToOpen      = "Unable to open file"
	UnsupportedFormat = "Unsupported file format"
	Decompression     = "Unable to decompress file"
	WrongFormat       = "Wrong format"
)

// parseError is what the readers return when a line is malformed. Load turns it into a LoadError.
type parseError struct {
	CError
	line int
}

func newParseError(msg string, line int, caller string, cause ...error) *parseError {
	return &parseError{CError: *newCError(msg, caller, cause...), line: line}
}

func (err *parseError) Error() string {
	return fmt.Sprintf("line %d: %s", err.line, err.CError.Error())
}

// Decorate needs to be redefined so the pointer receiver of the embedded CError is used.
func (err *parseError) Decorate(dec string) []string { return err.CError.Decorate(dec) }

// asLoadError turns any error from the readers into a *LoadError for the
// file name and format given, keeping the decoration trail.
func asLoadError(err error, name, format string) *LoadError {
	var lerr *LoadError
	if errors.As(err, &lerr) {
		return lerr
	}
	ret := &LoadError{msg: WrongFormat, fileName: name, format: format, err: err}
	var perr *parseError
	var cerr *CError
	if errors.As(err, &perr) {
		ret.line = perr.line
		ret.msg = perr.msg
		ret.err = perr.err
		ret.deco = append(ret.deco, perr.deco...)
	} else if errors.As(err, &cerr) {
		ret.msg = cerr.msg
		ret.err = cerr.err
		ret.deco = append(ret.deco, cerr.deco...)
	}
	return ret
}

// errDecorate is a helper function that decorates err with the caller's name
// if err implements Error, and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
