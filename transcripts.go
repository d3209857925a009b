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

import "fmt"
import "strings"

/* -------------------------------------------------------------------------- */

// Container for refFlat transcript annotations. Each row describes one
// transcript. Tx contains the transcription start and end positions, Cds
// the coding region. Exon positions are stored as parallel integer lists
// of equal length. Transcript names are stored without version suffix.
type Transcripts struct {
  GeneNames    []string
  Names        []string
  Seqnames     []string
  Strand       []byte
  Tx           []Range
  Cds          []Range
  ExonStarts   [][]int
  ExonEnds     [][]int
  Scores       []int
  Names2       []string
  CdsStartStat []string
  CdsEndStat   []string
  ExonFrames   [][]int
  index        map[string]int
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewTranscripts(geneNames, names, seqnames []string, strand []byte, tx, cds []Range, exonStarts, exonEnds [][]int, scores []int, names2, cdsStartStat, cdsEndStat []string, exonFrames [][]int) Transcripts {
  n := len(names)
  if len(geneNames)    != n || len(seqnames)   != n || len(strand)     != n ||
     len(tx)           != n || len(cds)        != n || len(exonStarts) != n ||
     len(exonEnds)     != n || len(scores)     != n || len(names2)     != n ||
     len(cdsStartStat) != n || len(cdsEndStat) != n || len(exonFrames) != n {
    panic("NewTranscripts(): invalid arguments!")
  }
  index := map[string]int{}
  for i := 0; i < n; i++ {
    // check if strand is valid
    if strand[i] != '+' && strand[i] != '-' {
      panic("NewTranscripts(): Invalid strand!")
    }
    if len(exonStarts[i]) != len(exonEnds[i]) {
      panic("NewTranscripts(): exon lists have unequal lengths!")
    }
    index[names[i]] = i
  }
  return Transcripts{
    geneNames, names, seqnames, strand, tx, cds, exonStarts, exonEnds,
    scores, names2, cdsStartStat, cdsEndStat, exonFrames, index}
}

func (obj *Transcripts) Clone() Transcripts {
  n := obj.Length()
  indices := make([]int, n)
  for i := 0; i < n; i++ {
    indices[i] = i
  }
  return obj.Subset(indices)
}

/* -------------------------------------------------------------------------- */

func (obj *Transcripts) Length() int {
  return len(obj.Names)
}

// Returns the number of exons of transcript i.
func (obj *Transcripts) ExonCount(i int) int {
  return len(obj.ExonStarts[i])
}

// Returns the exon regions of transcript i.
func (obj *Transcripts) Exons(i int) []Range {
  exons := make([]Range, len(obj.ExonStarts[i]))
  for j := 0; j < len(exons); j++ {
    exons[j] = NewRange(obj.ExonStarts[i][j], obj.ExonEnds[i][j])
  }
  return exons
}

func (obj *Transcripts) Subset(indices []int) Transcripts {
  n := len(indices)
  geneNames    := make([]string,  n)
  names        := make([]string,  n)
  seqnames     := make([]string,  n)
  strand       := make([]byte,    n)
  tx           := make([]Range,   n)
  cds          := make([]Range,   n)
  exonStarts   := make([][]int,   n)
  exonEnds     := make([][]int,   n)
  scores       := make([]int,     n)
  names2       := make([]string,  n)
  cdsStartStat := make([]string,  n)
  cdsEndStat   := make([]string,  n)
  exonFrames   := make([][]int,   n)

  for i := 0; i < n; i++ {
    geneNames   [i] = obj.GeneNames   [indices[i]]
    names       [i] = obj.Names       [indices[i]]
    seqnames    [i] = obj.Seqnames    [indices[i]]
    strand      [i] = obj.Strand      [indices[i]]
    tx          [i] = obj.Tx          [indices[i]]
    cds         [i] = obj.Cds         [indices[i]]
    exonStarts  [i] = obj.ExonStarts  [indices[i]]
    exonEnds    [i] = obj.ExonEnds    [indices[i]]
    scores      [i] = obj.Scores      [indices[i]]
    names2      [i] = obj.Names2      [indices[i]]
    cdsStartStat[i] = obj.CdsStartStat[indices[i]]
    cdsEndStat  [i] = obj.CdsEndStat  [indices[i]]
    exonFrames  [i] = obj.ExonFrames  [indices[i]]
  }
  return NewTranscripts(geneNames, names, seqnames, strand, tx, cds,
    exonStarts, exonEnds, scores, names2, cdsStartStat, cdsEndStat, exonFrames)
}

/* -------------------------------------------------------------------------- */

// Returns the index of a transcript.
func (obj *Transcripts) FindTranscript(name string) (int, bool) {
  i, ok := obj.index[name]
  return i, ok
}

// Returns all transcripts annotated with the given gene name, i.e.
// all rows where the name2 column matches.
func (obj *Transcripts) FilterGene(name2 string) Transcripts {
  indices := []int{}
  for i := 0; i < obj.Length(); i++ {
    if obj.Names2[i] == name2 {
      indices = append(indices, i)
    }
  }
  return obj.Subset(indices)
}

// Returns all transcripts with the given name. Transcript names are
// compared without version suffix.
func (obj *Transcripts) FilterTranscript(name string) Transcripts {
  indices := []int{}
  for i := 0; i < obj.Length(); i++ {
    if obj.Names[i] == name {
      indices = append(indices, i)
    }
  }
  return obj.Subset(indices)
}

/* -------------------------------------------------------------------------- */

// ExpandExons melts the table into a set of regions with one entry per
// exon. Entries are named `<transcript>_exon<k>' with exons numbered from
// left to right, and the region score is set to the exon frame.
func (obj *Transcripts) ExpandExons() Regions {
  regions := NewEmptyRegions(0)
  for i := 0; i < obj.Length(); i++ {
    for j := 0; j < obj.ExonCount(i); j++ {
      frame := 0
      if j < len(obj.ExonFrames[i]) {
        frame = obj.ExonFrames[i][j]
      }
      regions.Seqnames    = append(regions.Seqnames,    obj.Seqnames[i])
      regions.Ranges      = append(regions.Ranges,      NewRange(obj.ExonStarts[i][j], obj.ExonEnds[i][j]))
      regions.Strand      = append(regions.Strand,      obj.Strand[i])
      regions.Names       = append(regions.Names,       fmt.Sprintf("%s_exon%d", obj.Names[i], j+1))
      regions.Genes       = append(regions.Genes,       obj.Names2[i])
      regions.Transcripts = append(regions.Transcripts, obj.Names[i])
      regions.Scores      = append(regions.Scores,      frame)
    }
  }
  return regions
}

/* -------------------------------------------------------------------------- */

// Strip the version suffix from a transcript name, e.g. NM_001005484.2
// becomes NM_001005484.
func stripTranscriptVersion(name string) string {
  if i := strings.Index(name, "."); i != -1 {
    return name[0:i]
  }
  return name
}
