/*
 * main.go, part of adjmat.
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

// Command adjmat prints the adjacency matrix of the molecule in a file.
//
//	usage: adjmat <file>
//
// The file can be XYZ, PDB or MOL/SDF, optionally compressed with gzip or zstd.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	chem "github.com/rmera/adjmat"
	"github.com/rmera/adjmat/adjmat"
	"github.com/rmera/adjmat/chemgraph"
)

// exit statuses
const (
	exitOK    = 0
	exitUsage = -1
	exitLoad  = 1
)

// usageError means that the file argument was not given.
type usageError struct {
	prog string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("usage: %s <file>", e.prog)
}

func newRootCmd(prog string, stdout io.Writer, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   prog + " <file>",
		Short: "Print the adjacency matrix of a molecule",
		Long: `Reads the molecule in <file> and prints its adjacency matrix: one line
per atom, with a 1 in column j if the atom is bonded to atom j and a 0 otherwise.
The format is taken from the extension (.xyz, .pdb, .ent, .mol, .sdf, .sd),
optionally followed by .gz or .zst.`,
		//Every argument is a file name, even if it starts with "-".
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return &usageError{prog: prog}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := args[0] //any further arguments are ignored.
			mol, err := chem.Load(name)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"file": name, "atoms": mol.Len(), "frames": mol.LenFrames()}).Debug("Molecule read")
			return adjmat.Fprint(stdout, chemgraph.FromTopology(mol.Topology))
		},
	}
	cmd.SetOut(stdout)
	return cmd
}

// run executes the command with the given arguments (without the program name)
// and returns the exit status.
func run(prog string, args []string, stdout io.Writer, log *logrus.Logger) int {
	if args == nil {
		args = []string{} //cobra falls back to os.Args for nil.
	}
	cmd := newRootCmd(prog, stdout, log)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stdout, uerr.Error())
		return exitUsage
	}
	var lerr *chem.LoadError
	if errors.As(err, &lerr) {
		log.WithFields(logrus.Fields{"file": lerr.FileName(), "format": lerr.Format()}).Error(err)
	} else {
		log.Error(err)
	}
	return exitLoad
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, log))
}
