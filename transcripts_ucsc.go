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
import "database/sql"

import _ "github.com/go-sql-driver/mysql"

/* import transcripts from ucsc
 * -------------------------------------------------------------------------- */

// ImportTranscriptsFromUCSC downloads a gene annotation table such as
// `ncbiRefSeq' or `refGene' from the public UCSC MySQL server for the
// given genome assembly (e.g. `hg38').
func ImportTranscriptsFromUCSC(genome, table string) (Transcripts, error) {
  transcripts := Transcripts{}
  /* variables for storing a single database row */
  var i_name, i_seqname, i_strand, i_name2, i_cdsStartStat, i_cdsEndStat string
  var i_exonStarts, i_exonEnds, i_exonFrames string
  var i_txFrom, i_txTo, i_cdsFrom, i_cdsTo, i_exonCount, i_score int

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

  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(genome-mysql.cse.ucsc.edu:3306)/%s", genome))
  if err != nil {
    return transcripts, err
  }
  defer db.Close()

  err = db.Ping()
  if err != nil {
    return transcripts, err
  }

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT name, chrom, strand, txStart, txEnd, cdsStart, cdsEnd, exonCount, exonStarts, exonEnds, score, name2, cdsStartStat, cdsEndStat, exonFrames FROM %s", table))
  if err != nil {
    return transcripts, err
  }
  defer rows.Close()
  for rows.Next() {
    err := rows.Scan(&i_name, &i_seqname, &i_strand, &i_txFrom, &i_txTo,
      &i_cdsFrom, &i_cdsTo, &i_exonCount, &i_exonStarts, &i_exonEnds,
      &i_score, &i_name2, &i_cdsStartStat, &i_cdsEndStat, &i_exonFrames)
    if err != nil {
      return transcripts, err
    }
    t1, err := parseIntList(i_exonStarts)
    if err != nil {
      return transcripts, err
    }
    t2, err := parseIntList(i_exonEnds)
    if err != nil {
      return transcripts, err
    }
    t3, err := parseIntList(i_exonFrames)
    if err != nil {
      return transcripts, err
    }
    if len(t1) != i_exonCount || len(t2) != i_exonCount || len(t3) != i_exonCount {
      return transcripts, fmt.Errorf("transcript `%s' has inconsistent exon lists", i_name)
    }
    geneNames    = append(geneNames,    i_name2)
    names        = append(names,        stripTranscriptVersion(i_name))
    seqnames     = append(seqnames,     i_seqname)
    strand       = append(strand,       i_strand[0])
    tx           = append(tx,           NewRange(i_txFrom,  i_txTo))
    cds          = append(cds,          NewRange(i_cdsFrom, i_cdsTo))
    exonStarts   = append(exonStarts,   t1)
    exonEnds     = append(exonEnds,     t2)
    scores       = append(scores,       i_score)
    names2       = append(names2,       i_name2)
    cdsStartStat = append(cdsStartStat, i_cdsStartStat)
    cdsEndStat   = append(cdsEndStat,   i_cdsEndStat)
    exonFrames   = append(exonFrames,   t3)
  }
  return NewTranscripts(geneNames, names, seqnames, strand, tx, cds,
    exonStarts, exonEnds, scores, names2, cdsStartStat, cdsEndStat, exonFrames), nil
}
