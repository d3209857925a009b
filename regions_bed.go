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
import "io"

/* -------------------------------------------------------------------------- */

// Export regions as bed file with four columns.
func (obj Regions) WriteBed4(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < obj.Length(); i++ {
    fmt.Fprintf(w,   "%s", obj.Seqnames[i])
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].To)
    if obj.Names[i] != "" {
      fmt.Fprintf(w, "\t%s", obj.Names[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (obj Regions) ExportBed4(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteBed4(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Export regions as bed file with six columns.
func (obj Regions) WriteBed6(writer io.Writer) error {
  w := bufio.NewWriter(writer)

  for i := 0; i < obj.Length(); i++ {
    fmt.Fprintf(w,   "%s", obj.Seqnames[i])
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].To)
    if obj.Names[i] != "" {
      fmt.Fprintf(w, "\t%s", obj.Names[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    fmt.Fprintf(w, "\t%d", obj.Scores[i])
    if obj.Strand[i] != '*' {
      fmt.Fprintf(w, "\t%c", obj.Strand[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (obj Regions) ExportBed6(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteBed6(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// WriteTable exports regions with all label columns, i.e. seqname, start,
// end, name, strand, gene, and transcript.
func (obj Regions) WriteTable(writer io.Writer, header bool) error {
  w := bufio.NewWriter(writer)

  if header {
    fmt.Fprintf(w, "#chrom\tstart\tend\tname\tstrand\tgene\ttranscript\n")
  }
  for i := 0; i < obj.Length(); i++ {
    fmt.Fprintf(w,   "%s", obj.Seqnames[i])
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].From)
    fmt.Fprintf(w, "\t%d", obj.Ranges[i].To)
    if obj.Names[i] != "" {
      fmt.Fprintf(w, "\t%s", obj.Names[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    if obj.Strand[i] != '*' {
      fmt.Fprintf(w, "\t%c", obj.Strand[i])
    } else {
      fmt.Fprintf(w, "\t%s", ".")
    }
    fmt.Fprintf(w, "\t%s", obj.Genes[i])
    fmt.Fprintf(w, "\t%s", obj.Transcripts[i])
    fmt.Fprintf(w, "\n")
  }
  return w.Flush()
}

func (obj Regions) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
