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
import   "sort"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/refflat"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

func printMsg(verbose bool, format string, args... interface{}) {
  if verbose {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func saveLengthPlot(filename string, lengths map[int]int) {
  keys := []int{}
  for k, _ := range lengths {
    keys = append(keys, k)
  }
  sort.Ints(keys)

  xy := make(plotter.XYs, len(keys))
  for i := 0; i < len(keys); i++ {
    xy[i].X = float64(keys[i])
    xy[i].Y = float64(lengths[keys[i]])
  }
  p := plot.New()
  p.Title.Text   = ""
  p.X.Label.Text = "exon length"
  p.Y.Label.Text = "frequency"
  p.X.Scale = plot.LogScale{}
  p.X.Tick.Marker = plot.LogTicks{Prec: -1}

  if err := plotutil.AddLines(p, xy); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
}

/* -------------------------------------------------------------------------- */

func refFlatStatistics(filenameIn, filenamePlot string, verbose bool) {
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

  genes   := make(map[string]bool)
  lengths := make(map[int]int)
  exons   := 0

  for i := 0; i < transcripts.Length(); i++ {
    genes[transcripts.Names2[i]] = true
    for _, exon := range transcripts.Exons(i) {
      lengths[exon.Length()] += 1
      exons                  += 1
    }
  }
  fmt.Printf("transcripts         : %d\n", transcripts.Length())
  fmt.Printf("genes               : %d\n", len(genes))
  fmt.Printf("exons               : %d\n", exons)
  if transcripts.Length() > 0 {
    fmt.Printf("exons per transcript: %.2f\n", float64(exons)/float64(transcripts.Length()))
  }
  if filenamePlot != "" {
    printMsg(verbose, "Writing exon length distribution to `%s'... ", filenamePlot)
    saveLengthPlot(filenamePlot, lengths)
    printMsg(verbose, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  options := getopt.New()
  options.SetProgram(fmt.Sprintf("%s", os.Args[0]))

  optInput   := options.StringLong("input",    0 , "", "read refFlat table from file [default: stdin]")
  optPlot    := options.StringLong("plot",     0 , "", "save exon length distribution plot to file [e.g. lengths.pdf]")

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
  refFlatStatistics(*optInput, *optPlot, *optVerbose)
}
