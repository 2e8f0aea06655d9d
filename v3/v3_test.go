/*
 * v3_test.go, part of adjmat.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("A slice of length 2 should not make a Matrix")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("An empty slice should not make a Matrix")
	}
}

func TestDist(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0, 1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	if d := A.Dist(0, 1); math.Abs(d-5) > 1e-12 {
		Te.Errorf("Expected distance 5, got %f", d)
	}
	buf := Zeros(1)
	if d := A.Dist(0, 2, buf); math.Abs(d-math.Sqrt(3)) > 1e-12 {
		Te.Errorf("Expected distance sqrt(3), got %f", d)
	}
	if d := A.Dist(1, 1, buf); d != 0 {
		Te.Errorf("Distance from a vector to itself should be 0, got %f", d)
	}
}

func TestVecView(Te *testing.T) {
	A := Zeros(3)
	v := A.VecView(1)
	v.Set(0, 2, 7)
	if A.At(1, 2) != 7 {
		Te.Error("Changes in a view should be reflected in the parent Matrix")
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("VecView out of range should panic")
		}
	}()
	A.VecView(3)
}

func TestDense2Matrix(Te *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	M := Dense2Matrix(d)
	if M.NVecs() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", M.NVecs())
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("Dense2Matrix should panic for a matrix without 3 columns")
		}
	}()
	Dense2Matrix(mat.NewDense(2, 2, nil))
}
