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

import "encoding/json"
import "fmt"
import "io"
import "os"
import "strings"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

// A gene panel query. GeneName is required. Transcript restricts the
// panel to a single transcript and Exons is an exon selection expression
// as understood by ParseIntSet.
type PanelQuery struct {
  GeneName   string `json:"genename"`
  Transcript string `json:"transcript"`
  Exons      string `json:"exons"`
}

/* constructors
 * -------------------------------------------------------------------------- */

// ReadPanelQuery decodes a single query from a json object string, e.g.
// `{"genename": "DRD4", "transcript": "NM_000797", "exons": "<3,5-8"}'.
// Keys with empty values are treated as absent.
func ReadPanelQuery(str string) (PanelQuery, error) {
  query := PanelQuery{}
  if err := json.Unmarshal([]byte(str), &query); err != nil {
    return query, fmt.Errorf("invalid input json string: %v", err)
  }
  if query.GeneName == "" {
    return query, fmt.Errorf("query does not specify a genename")
  }
  return query, nil
}

// ReadPanelQueries decodes a json array of queries.
func ReadPanelQueries(reader io.Reader) ([]PanelQuery, error) {
  queries := []PanelQuery{}
  if err := json.NewDecoder(reader).Decode(&queries); err != nil {
    return nil, fmt.Errorf("invalid input json string: %v", err)
  }
  for i := 0; i < len(queries); i++ {
    if queries[i].GeneName == "" {
      return nil, fmt.Errorf("query %d does not specify a genename", i+1)
    }
  }
  return queries, nil
}

func ImportPanelQueries(filename string) ([]PanelQuery, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  return ReadPanelQueries(f)
}

/* -------------------------------------------------------------------------- */

// OutputFilename derives a bed file name from the query in case none was
// specified on the command line.
func (query PanelQuery) OutputFilename() string {
  parts := []string{}
  for _, s := range []string{query.GeneName, query.Transcript, query.Exons} {
    if s != "" {
      parts = append(parts, s)
    }
  }
  name := strings.Join(parts, "_")
  name  = strings.Map(func(r rune) rune {
    switch r {
    case ',', ':', '-', '<':
      return '_'
    }
    return r
  }, name)
  return name + ".bed"
}

/* -------------------------------------------------------------------------- */

func containsInt(s []int, v int) bool {
  for i := 0; i < len(s); i++ {
    if s[i] == v {
      return true
    }
  }
  return false
}

/* -------------------------------------------------------------------------- */

// BuildPanel extracts the regions a query refers to. Transcripts are
// filtered by gene name and optionally by transcript name, exons are
// expanded into one region each and numbered in coordinate order across
// all remaining transcripts. With strandMatch enabled the numbering is
// reversed on the minus strand, i.e. the exon with the largest
// coordinates is exon one. If the query contains an exon selection, only
// the selected exon numbers are kept and entries are labeled
// `exon_num_<k>'; otherwise all exons are kept and entries are labeled
// `total_exon_<count>'. Overlapping regions are merged with distinct
// label values collapsed.
func BuildPanel(transcripts Transcripts, query PanelQuery, strandMatch bool) (Regions, error) {
  regions := Regions{}

  var selection []int
  if query.Exons != "" {
    r, err := ParseIntSet(query.Exons)
    if err != nil {
      return regions, fmt.Errorf("incorrect exon range (example: <3,4-7,10-12,24): %v", err)
    }
    selection = r
  }
  t := transcripts.FilterGene(query.GeneName)
  if t.Length() == 0 {
    return regions, fmt.Errorf("no entries for genename `%s' found in reference", query.GeneName)
  }
  if query.Transcript != "" {
    t = t.FilterTranscript(query.Transcript)
    if t.Length() == 0 {
      return regions, fmt.Errorf("no entries for transcript `%s' found in reference", query.Transcript)
    }
  }
  sorted := t.ExpandExons().Sort()

  // number exons in coordinate order; on the minus strand the numbering
  // is reversed if requested
  n       := sorted.Length()
  reverse := strandMatch && t.Strand[0] == '-'

  indices := []int{}
  for i := 0; i < n; i++ {
    exonNum := i+1
    if reverse {
      exonNum = n-i
    }
    if selection != nil {
      if !containsInt(selection, exonNum) {
        continue
      }
      sorted.Names[i] = fmt.Sprintf("exon_num_%d", exonNum)
    } else {
      j, ok := t.FindTranscript(sorted.Transcripts[i])
      if !ok {
        panic("internal error")
      }
      sorted.Names[i] = fmt.Sprintf("total_exon_%d", t.ExonCount(j))
    }
    indices = append(indices, i)
  }
  return sorted.Subset(indices).Merge(), nil
}

// BuildPanels processes a batch of queries with the given number of
// threads. Results are returned in query order.
func BuildPanels(transcripts Transcripts, queries []PanelQuery, strandMatch bool, threads int) ([]Regions, error) {
  if threads < 1 {
    threads = 1
  }
  results := make([]Regions, len(queries))

  pool := threadpool.New(threads, 100*threads)

  err := pool.RangeJob(0, len(queries), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    r, err := BuildPanel(transcripts, queries[i], strandMatch)
    if err != nil {
      return fmt.Errorf("query %d (%s): %v", i+1, queries[i].GeneName, err)
    }
    results[i] = r
    return nil
  })
  if err != nil {
    return nil, err
  }
  return results, nil
}
