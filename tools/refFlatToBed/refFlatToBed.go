/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/refflat"

/* -------------------------------------------------------------------------- */

func printMsg(verbose bool, format string, args... interface{}) {
  if verbose {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func refFlatToBed(filenameIn, filenameOut string, merge, verbose bool) {
  var transcripts Transcripts

  printMsg(verbose, "Reading refFlat table from file `%s'... ", filenameIn)
  if filenameIn == "" {
    if t, err := ReadTranscripts(os.Stdin); err != nil {
      printMsg(verbose, "failed\n")
      log.Fatal(err)
    } else {
      transcripts = t
    }
  } else {
    if t, err := ImportTranscripts(filenameIn); err != nil {
      printMsg(verbose, "failed\n")
      log.Fatal(err)
    } else {
      transcripts = t
    }
  }
  printMsg(verbose, "done\n")

  regions := transcripts.ExpandExons()
  if merge {
    regions = regions.Merge()
  }

  printMsg(verbose, "Writing result to file `%s'... ", filenameOut)
  if filenameOut == "" {
    if err := regions.WriteBed6(os.Stdout); err != nil {
      printMsg(verbose, "failed\n")
      log.Fatal(err)
    }
  } else {
    if err := regions.ExportBed6(filenameOut, false); err != nil {
      printMsg(verbose, "failed\n")
      log.Fatal(err)
    }
  }
  printMsg(verbose, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optInput   := options.StringLong("input",    0 , "", "read refFlat table from file [default: stdin]")
  optOutput  := options.StringLong("output",   0 , "", "write result to file [default: stdout]")
  optMerge   := options.  BoolLong("merge",     0,     "merge overlapping exon regions")

  optHelp    := options.  BoolLong("help",    'h',     "print help")
  optVerbose := options.  BoolLong("verbose", 'v',     "be verbose")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  refFlatToBed(*optInput, *optOutput, *optMerge, *optVerbose)
}
