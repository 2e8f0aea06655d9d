/*
 * gonum.go, part of adjmat.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a row
// vector, i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// Dense2Matrix wraps A, which must have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != cols {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

// NewMatrix returns a Matrix with 3 columns built on data. data is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 {
		return nil, &Error{message: "Empty data slice", deco: []string{"NewMatrix"}, critical: true}
	}
	if l%cols != 0 {
		return nil, &Error{message: fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), deco: []string{"NewMatrix"}, critical: true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

// NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// VecView returns a view of the ith vector of F. Changes in the view
// are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)}
}

// Sub puts A-B in the receiver.
func (F *Matrix) Sub(A, B *Matrix) {
	F.Dense.Sub(A.Dense, B.Dense)
}

// Norm returns the Frobenius norm of F, which for a single vector is its length.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

// Dist returns the distance between the vectors i and j of F.
// buffer, if given and not nil, is a 1-vector Matrix used to avoid allocations.
func (F *Matrix) Dist(i, j int, buffer ...*Matrix) float64 {
	var t *Matrix
	if len(buffer) > 0 && buffer[0] != nil {
		t = buffer[0]
	} else {
		t = Zeros(1)
	}
	t.Sub(F.VecView(j), F.VecView(i))
	return t.Norm()
}

// Error is the error type for this package. It does not import chem to avoid
// a circular dependency, but it implements chem.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate adds dec to the decoration slice of strings of the error,
// and returns the resulting slice. An empty dec adds nothing.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("adjmat/v3: A Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("adjmat/v3: index out of range")
)
