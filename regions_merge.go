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

import "strings"

/* -------------------------------------------------------------------------- */

func appendDistinct(list []string, value string) []string {
  for i := 0; i < len(list); i++ {
    if list[i] == value {
      return list
    }
  }
  return append(list, value)
}

/* -------------------------------------------------------------------------- */

type mergedRegion struct {
  seqname     string
  r           Range
  strand      byte
  names       []string
  genes       []string
  transcripts []string
}

func (obj *mergedRegion) merge(regions Regions, i int) {
  obj.r           = obj.r.Union(regions.Ranges[i])
  obj.names       = appendDistinct(obj.names,       regions.Names      [i])
  obj.genes       = appendDistinct(obj.genes,       regions.Genes      [i])
  obj.transcripts = appendDistinct(obj.transcripts, regions.Transcripts[i])
  // if strands do not match, set to `*'
  if regions.Strand[i] != obj.strand {
    obj.strand = '*'
  }
}

func newMergedRegion(regions Regions, i int) mergedRegion {
  return mergedRegion{
    seqname:     regions.Seqnames[i],
    r:           regions.Ranges[i],
    strand:      regions.Strand[i],
    names:       []string{regions.Names      [i]},
    genes:       []string{regions.Genes      [i]},
    transcripts: []string{regions.Transcripts[i]}}
}

/* -------------------------------------------------------------------------- */

// Merge combines overlapping and book-ended regions into single entries.
// The name, gene, and transcript columns of merged entries are collapsed
// to comma separated lists of the distinct values, in order of
// appearance. Entries with conflicting strands receive strand `*'.
func (obj Regions) Merge() Regions {
  result := NewEmptyRegions(0)
  if obj.Length() == 0 {
    return result
  }
  sorted := obj.Sort()

  push := func(entry mergedRegion) {
    result.Seqnames    = append(result.Seqnames,    entry.seqname)
    result.Ranges      = append(result.Ranges,      entry.r)
    result.Strand      = append(result.Strand,      entry.strand)
    result.Names       = append(result.Names,       strings.Join(entry.names,       ","))
    result.Genes       = append(result.Genes,       strings.Join(entry.genes,       ","))
    result.Transcripts = append(result.Transcripts, strings.Join(entry.transcripts, ","))
    result.Scores      = append(result.Scores,      0)
  }
  entry := newMergedRegion(sorted, 0)

  for i := 1; i < sorted.Length(); i++ {
    if sorted.Seqnames[i] == entry.seqname && sorted.Ranges[i].From <= entry.r.To {
      entry.merge(sorted, i)
    } else {
      push(entry)
      entry = newMergedRegion(sorted, i)
    }
  }
  push(entry)

  return result
}
