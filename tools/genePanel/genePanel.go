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

type Config struct {
  StrandMatch bool
  Threads     int
  Verbose     int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importTranscripts(config Config, filename string) Transcripts {
  PrintStderr(config, 1, "Reading refFlat table from file `%s'... ", filename)
  transcripts, err := ImportTranscripts(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return transcripts
}

func exportPanel(config Config, regions Regions, filename string) {
  PrintStderr(config, 1, "Writing panel to file `%s'... ", filename)
  if err := regions.ExportTable(filename, false, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func genePanel(config Config, filenameRef, queryStr, filenameOut string) {
  transcripts := importTranscripts(config, filenameRef)

  query, err := ReadPanelQuery(queryStr)
  if err != nil {
    log.Fatal(err)
  }
  if filenameOut == "" {
    filenameOut = query.OutputFilename()
    PrintStderr(config, 1, "Setting output file name to `%s'\n", filenameOut)
  }
  regions, err := BuildPanel(transcripts, query, config.StrandMatch)
  if err != nil {
    log.Fatal(err)
  }
  exportPanel(config, regions, filenameOut)
}

func genePanelBatch(config Config, filenameRef, filenameQueries string) {
  transcripts := importTranscripts(config, filenameRef)

  PrintStderr(config, 1, "Reading queries from file `%s'... ", filenameQueries)
  queries, err := ImportPanelQueries(filenameQueries)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  results, err := BuildPanels(transcripts, queries, config.StrandMatch, config.Threads)
  if err != nil {
    log.Fatal(err)
  }
  for i := 0; i < len(results); i++ {
    exportPanel(config, results[i], queries[i].OutputFilename())
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optReference   := options.StringLong("reference",    'r', "", "reference refFlat file (required)")
  optJson        := options.StringLong("json",         'i', "", "input json query string with keys genename, transcript, exons")
  optJsonFile    := options.StringLong("json-file",     0 , "", "read a json array of queries from file; one output file per query")
  optOutput      := options.StringLong("output",       'o', "", "output file name [default: <genename>.bed]")
  optStrandMatch := options.  BoolLong("strand-match",  0 ,     "consider strandness when counting exon numbers, i.e. if the strand\nis negative, the exon with the largest coordinates is exon one")
  optThreads     := options.   IntLong("threads",      't', 1,  "number of threads for batch processing")
  optVerbose     := options.CounterLong("verbose",     'v',     "verbose level [-v or -vv]")
  optHelp        := options.  BoolLong("help",         'h',     "print help")

  options.SetParameters("")
  options.Parse(os.Args)

  config.StrandMatch = *optStrandMatch
  config.Threads     = *optThreads
  config.Verbose     = *optVerbose

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 0 || *optReference == "" {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if (*optJson == "") == (*optJsonFile == "") {
    fmt.Fprintf(os.Stderr, "genePanel: exactly one of --json and --json-file must be given\n")
    os.Exit(1)
  }
  if *optJson != "" {
    genePanel(config, *optReference, *optJson, *optOutput)
  } else {
    genePanelBatch(config, *optReference, *optJsonFile)
  }
}
