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

import "sort"

/* -------------------------------------------------------------------------- */

// A set of labeled genomic regions, one entry per exon. Genes and
// Transcripts record which annotation row an entry was derived from.
type Regions struct {
  Seqnames    []string
  Ranges      []Range
  Strand      []byte
  Names       []string
  Genes       []string
  Transcripts []string
  Scores      []int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewEmptyRegions(n int) Regions {
  seqnames    := make([]string, n)
  ranges      := make([]Range,  n)
  strand      := make([]byte,   n)
  names       := make([]string, n)
  genes       := make([]string, n)
  transcripts := make([]string, n)
  scores      := make([]int,    n)
  for i := 0; i < n; i++ {
    strand[i] = '*'
  }
  return Regions{seqnames, ranges, strand, names, genes, transcripts, scores}
}

/* -------------------------------------------------------------------------- */

func (obj Regions) Length() int {
  return len(obj.Ranges)
}

func (obj Regions) Subset(indices []int) Regions {
  n := len(indices)
  r := NewEmptyRegions(n)

  for i := 0; i < n; i++ {
    r.Seqnames   [i] = obj.Seqnames   [indices[i]]
    r.Ranges     [i] = obj.Ranges     [indices[i]]
    r.Strand     [i] = obj.Strand     [indices[i]]
    r.Names      [i] = obj.Names      [indices[i]]
    r.Genes      [i] = obj.Genes      [indices[i]]
    r.Transcripts[i] = obj.Transcripts[indices[i]]
    r.Scores     [i] = obj.Scores     [indices[i]]
  }
  return r
}

func (obj Regions) Clone() Regions {
  indices := make([]int, obj.Length())
  for i := 0; i < obj.Length(); i++ {
    indices[i] = i
  }
  return obj.Subset(indices)
}

/* sorting
 * -------------------------------------------------------------------------- */

func (obj Regions) Len() int {
  return obj.Length()
}

func (obj Regions) Less(i, j int) bool {
  if obj.Seqnames[i] != obj.Seqnames[j] {
    return obj.Seqnames[i] < obj.Seqnames[j]
  }
  if obj.Ranges[i].From != obj.Ranges[j].From {
    return obj.Ranges[i].From < obj.Ranges[j].From
  }
  return obj.Ranges[i].To < obj.Ranges[j].To
}

func (obj Regions) Swap(i, j int) {
  obj.Seqnames   [i], obj.Seqnames   [j] = obj.Seqnames   [j], obj.Seqnames   [i]
  obj.Ranges     [i], obj.Ranges     [j] = obj.Ranges     [j], obj.Ranges     [i]
  obj.Strand     [i], obj.Strand     [j] = obj.Strand     [j], obj.Strand     [i]
  obj.Names      [i], obj.Names      [j] = obj.Names      [j], obj.Names      [i]
  obj.Genes      [i], obj.Genes      [j] = obj.Genes      [j], obj.Genes      [i]
  obj.Transcripts[i], obj.Transcripts[j] = obj.Transcripts[j], obj.Transcripts[i]
  obj.Scores     [i], obj.Scores     [j] = obj.Scores     [j], obj.Scores     [i]
}

// Sort returns a copy of the regions ordered by position.
func (obj Regions) Sort() Regions {
  r := obj.Clone()
  sort.Sort(r)
  return r
}
