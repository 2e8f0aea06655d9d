/*
 * main_test.go, part of adjmat.
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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return log
}

func TestUsage(Te *testing.T) {
	for _, args := range [][]string{nil, {}} {
		var out, logs bytes.Buffer
		status := run("adjmat", args, &out, testLogger(&logs))
		if status != exitUsage {
			Te.Errorf("Expected exit status %d, got %d", exitUsage, status)
		}
		if got := out.String(); got != "usage: adjmat <file>\n" {
			Te.Errorf("Unexpected output %q", got)
		}
	}
}

func TestPrint(Te *testing.T) {
	var out, logs bytes.Buffer
	status := run("adjmat", []string{"../../testdata/water.xyz", "ignored"}, &out, testLogger(&logs))
	if status != exitOK {
		Te.Fatalf("Expected exit status 0, got %d. Log: %s", status, logs.String())
	}
	if got, want := out.String(), "0 1 1 \n1 0 0 \n1 0 0 \n"; got != want {
		Te.Errorf("Expected %q, got %q", want, got)
	}
}

// Flags are not parsed, so this is just a file that doesn't exist.
func TestDashArgument(Te *testing.T) {
	var out, logs bytes.Buffer
	status := run("adjmat", []string{"--help"}, &out, testLogger(&logs))
	if status != exitLoad {
		Te.Errorf("Expected exit status %d, got %d", exitLoad, status)
	}
	if out.Len() != 0 {
		Te.Errorf("Expected no output, got %q", out.String())
	}
}

func TestLoadFailure(Te *testing.T) {
	var out, logs bytes.Buffer
	status := run("adjmat", []string{"../../testdata/broken.xyz"}, &out, testLogger(&logs))
	if status != exitLoad {
		Te.Errorf("Expected exit status %d, got %d", exitLoad, status)
	}
	if out.Len() != 0 {
		Te.Errorf("Expected no matrix output, got %q", out.String())
	}
	if l := logs.String(); !strings.Contains(l, "level=error") || !strings.Contains(l, "broken.xyz") {
		Te.Errorf("Expected the error to be logged with the file name, got %q", l)
	}
}
