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

func refFlatDownload(genome, table, filenameOut string, compress, verbose bool) {

  printMsg(verbose, "Downloading table `%s' for genome `%s'... ", table, genome)
  transcripts, err := ImportTranscriptsFromUCSC(genome, table)
  if err != nil {
    printMsg(verbose, "failed\n")
    log.Fatal(err)
  }
  printMsg(verbose, "done\n")

  if filenameOut == "" {
    if err := transcripts.WriteTable(os.Stdout, true); err != nil {
      log.Fatal(err)
    }
  } else {
    printMsg(verbose, "Writing table to file `%s'... ", filenameOut)
    if err := transcripts.ExportTable(filenameOut, true, compress); err != nil {
      printMsg(verbose, "failed\n")
      log.Fatal(err)
    }
    printMsg(verbose, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optOutput   := options.StringLong("output",   0 , "", "write table to file [default: stdout]")
  optCompress := options.  BoolLong("compress", 0 ,     "gzip compress output file")

  optHelp     := options.  BoolLong("help",    'h',     "print help")
  optVerbose  := options.  BoolLong("verbose", 'v',     "be verbose")

  options.SetParameters("<GENOME> <TABLE>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  refFlatDownload(options.Args()[0], options.Args()[1], *optOutput, *optCompress, *optVerbose)
}
