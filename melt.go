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

// A refFlat row has 16 columns. Columns 1-9 are shared transcript
// attributes with the exon count in column 9, columns 10 and 11 hold the
// comma separated exon start and end positions, columns 12-15 are again
// shared attributes, and column 16 holds the comma separated exon frames.
const (
  colExonCount  =  8
  colExonStarts =  9
  colExonEnds   = 10
  colExonFrames = 15
  colSuffixFrom = 11
  numColumns    = 16
)

/* -------------------------------------------------------------------------- */

// CountMismatchError is returned when the length of one of the exon list
// columns disagrees with the declared exon count.
type CountMismatchError struct {
  List     string
  Declared int
  Observed int
  Line     int
  Row      string
}

func (e *CountMismatchError) Error() string {
  return fmt.Sprintf("line %d: %s column has %d entries but exonCount is %d: `%s'",
    e.Line, e.List, e.Observed, e.Declared, e.Row)
}

/* -------------------------------------------------------------------------- */

// Melter converts a refFlat table from one row per transcript to one row
// per exon. The shared transcript attributes are repeated on every exon
// row. Field and list delimiters are explicit so that no global separator
// state is involved.
type Melter struct {
  FieldSep string
  ListSep  string
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewMelter() Melter {
  return Melter{FieldSep: "\t", ListSep: ","}
}

/* -------------------------------------------------------------------------- */

func listElem(entries []string, i int) string {
  if i < len(entries) {
    return entries[i]
  }
  return ""
}

// A list column ending with a delimiter splits into one extra empty
// element, which is tolerated. The check only fails if the element at
// position n exists and is non-empty, hence a list that is shorter than
// the declared count passes and fans out empty values; this inherited
// asymmetry is kept as is.
func (m Melter) checkList(name string, entries []string, n, line int, row string) error {
  if len(entries)-1 == n {
    return nil
  }
  if n < len(entries) && entries[n] != "" {
    return &CountMismatchError{name, n, len(entries), line, row}
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// MeltRow converts a single transcript record into its exon rows. The
// line number refers to the position of the record in the input stream
// (with the header on line one) and is used only for error messages.
// Columns beyond the 16th are ignored. Apart from the exon count and the
// list lengths all values are treated as opaque strings.
func (m Melter) MeltRow(row string, line int) ([]string, error) {
  fields := strings.Split(row, m.FieldSep)
  if len(fields) < numColumns {
    return nil, fmt.Errorf("line %d: expected %d fields but got %d", line, numColumns, len(fields))
  }
  v, err := strconv.ParseInt(fields[colExonCount], 10, 64)
  if err != nil {
    return nil, fmt.Errorf("line %d: parsing exonCount failed: %v", line, err)
  }
  n := int(v)

  starts := strings.Split(fields[colExonStarts], m.ListSep)
  ends   := strings.Split(fields[colExonEnds],   m.ListSep)
  frames := strings.Split(fields[colExonFrames], m.ListSep)

  if err := m.checkList("exonStarts", starts, n, line, row); err != nil {
    return nil, err
  }
  if err := m.checkList("exonEnds",   ends,   n, line, row); err != nil {
    return nil, err
  }
  if err := m.checkList("exonFrames", frames, n, line, row); err != nil {
    return nil, err
  }
  prefix := strings.Join(fields[0:colExonCount+1],        m.FieldSep)
  suffix := strings.Join(fields[colSuffixFrom:colExonFrames], m.FieldSep)

  result := make([]string, n)
  for i := 0; i < n; i++ {
    result[i] = strings.Join([]string{
      prefix, listElem(starts, i), listElem(ends, i), suffix, listElem(frames, i)},
      m.FieldSep)
  }
  return result, nil
}

// Melt reads a refFlat table from reader and writes the molten table to
// writer. The first line is the header and is copied verbatim. Rows are
// processed strictly in order and processing stops at the first error,
// i.e. all rows preceding the offending one have been written already.
func (m Melter) Melt(reader io.Reader, writer io.Writer) error {
  scanner := bufio.NewScanner(reader)
  w := bufio.NewWriter(writer)

  // copy header
  if scanner.Scan() {
    if _, err := fmt.Fprintf(w, "%s\n", scanner.Text()); err != nil {
      return err
    }
  }
  for line := 2; scanner.Scan(); line++ {
    if len(scanner.Text()) == 0 {
      continue
    }
    rows, err := m.MeltRow(scanner.Text(), line)
    if err != nil {
      w.Flush()
      return err
    }
    for i := 0; i < len(rows); i++ {
      if _, err := fmt.Fprintf(w, "%s\n", rows[i]); err != nil {
        return err
      }
    }
  }
  if err := scanner.Err(); err != nil {
    w.Flush()
    return err
  }
  return w.Flush()
}

/* i/o
 * -------------------------------------------------------------------------- */

// ImportTable melts the given file, which may be gzip compressed.
func (m Melter) ImportTable(filename string, writer io.Writer) error {
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    return m.Melt(g, writer)
  }
  return m.Melt(f, writer)
}

// ExportTable melts the file given as first argument and writes the
// result to the second file, optionally gzip compressed.
func (m Melter) ExportTable(filenameIn, filenameOut string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := m.ImportTable(filenameIn, w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filenameOut, &buffer, compress)
}
