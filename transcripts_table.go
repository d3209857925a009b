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

package refflat

/* -------------------------------------------------------------------------- */

import "bufio"
import "bytes"
import "fmt"
import "compress/gzip"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

var tableHeader = []string{
  "#geneName", "name", "chrom", "strand", "txStart", "txEnd", "cdsStart",
  "cdsEnd", "exonCount", "exonStarts", "exonEnds", "score", "name2",
  "cdsStartStat", "cdsEndStat", "exonFrames"}

/* i/o
 * -------------------------------------------------------------------------- */

// ReadTranscripts parses a refFlat table. An optional header line starting
// with `#' is skipped. Transcript version suffixes are stripped so that
// rows can be looked up by plain accession.
func ReadTranscripts(reader io.Reader) (Transcripts, error) {
  var transcripts Transcripts

  geneNames    := []string{}
  names        := []string{}
  seqnames     := []string{}
  strand       := []byte{}
  tx           := []Range{}
  cds          := []Range{}
  exonStarts   := [][]int{}
  exonEnds     := [][]int{}
  scores       := []int{}
  names2       := []string{}
  cdsStartStat := []string{}
  cdsEndStat   := []string{}
  exonFrames   := [][]int{}

  scanner := bufio.NewScanner(reader)

  for line := 1; scanner.Scan(); line++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if line == 1 && fields[0][0] == '#' {
      // skip header
      continue
    }
    if len(fields) < numColumns {
      return transcripts, fmt.Errorf("line %d: expected %d fields but got %d", line, numColumns, len(fields))
    }
    t1, err := strconv.ParseInt(fields[4], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing txStart failed: %v", line, err)
    }
    t2, err := strconv.ParseInt(fields[5], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing txEnd failed: %v", line, err)
    }
    t3, err := strconv.ParseInt(fields[6], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing cdsStart failed: %v", line, err)
    }
    t4, err := strconv.ParseInt(fields[7], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing cdsEnd failed: %v", line, err)
    }
    t5, err := strconv.ParseInt(fields[8], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing exonCount failed: %v", line, err)
    }
    t6, err := parseIntList(fields[9])
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing exonStarts failed: %v", line, err)
    }
    t7, err := parseIntList(fields[10])
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing exonEnds failed: %v", line, err)
    }
    t8, err := strconv.ParseInt(fields[11], 10, 64)
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing score failed: %v", line, err)
    }
    t9, err := parseIntList(fields[15])
    if err != nil {
      return transcripts, fmt.Errorf("line %d: parsing exonFrames failed: %v", line, err)
    }
    if len(t6) != int(t5) {
      return transcripts, fmt.Errorf("line %d: exonStarts column has %d entries but exonCount is %d", line, len(t6), t5)
    }
    if len(t7) != int(t5) {
      return transcripts, fmt.Errorf("line %d: exonEnds column has %d entries but exonCount is %d", line, len(t7), t5)
    }
    if len(t9) != int(t5) {
      return transcripts, fmt.Errorf("line %d: exonFrames column has %d entries but exonCount is %d", line, len(t9), t5)
    }
    geneNames    = append(geneNames,    fields[0])
    names        = append(names,        stripTranscriptVersion(fields[1]))
    seqnames     = append(seqnames,     fields[2])
    strand       = append(strand,       fields[3][0])
    tx           = append(tx,           NewRange(int(t1), int(t2)))
    cds          = append(cds,          NewRange(int(t3), int(t4)))
    exonStarts   = append(exonStarts,   t6)
    exonEnds     = append(exonEnds,     t7)
    scores       = append(scores,       int(t8))
    names2       = append(names2,       fields[12])
    cdsStartStat = append(cdsStartStat, fields[13])
    cdsEndStat   = append(cdsEndStat,   fields[14])
    exonFrames   = append(exonFrames,   t9)
  }
  if err := scanner.Err(); err != nil {
    return transcripts, err
  }
  return NewTranscripts(geneNames, names, seqnames, strand, tx, cds,
    exonStarts, exonEnds, scores, names2, cdsStartStat, cdsEndStat, exonFrames), nil
}

// ImportTranscripts reads a refFlat table from a file, which may be
// gzip compressed.
func ImportTranscripts(filename string) (Transcripts, error) {
  var transcripts Transcripts
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return transcripts, err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return transcripts, err
    }
    defer g.Close()
    return ReadTranscripts(g)
  }
  return ReadTranscripts(f)
}

/* -------------------------------------------------------------------------- */

// WriteTable exports the table in refFlat column order. Exon lists are
// written with a trailing comma as in the original UCSC tables.
func (obj Transcripts) WriteTable(writer io.Writer, header bool) error {
  w := bufio.NewWriter(writer)

  if header {
    if _, err := fmt.Fprintf(w, "%s\n", strings.Join(tableHeader, "\t")); err != nil {
      return err
    }
  }
  for i := 0; i < obj.Length(); i++ {
    if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%c\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
      obj.GeneNames[i],
      obj.Names[i],
      obj.Seqnames[i],
      obj.Strand[i],
      obj.Tx[i].From,
      obj.Tx[i].To,
      obj.Cds[i].From,
      obj.Cds[i].To,
      obj.ExonCount(i),
      formatIntList(obj.ExonStarts[i]),
      formatIntList(obj.ExonEnds[i]),
      obj.Scores[i],
      obj.Names2[i],
      obj.CdsStartStat[i],
      obj.CdsEndStat[i],
      formatIntList(obj.ExonFrames[i])); err != nil {
      return err
    }
  }
  return w.Flush()
}

func (obj Transcripts) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
