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

//import   "fmt"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestPanelQuery1(t *testing.T) {

  query, err := ReadPanelQuery(`{"genename": "GENE_A", "transcript": "NM_100", "exons": "<3"}`)
  if err != nil {
    t.Error(err)
  }
  if query.GeneName != "GENE_A" || query.Transcript != "NM_100" || query.Exons != "<3" {
    t.Error("TestPanelQuery1 failed!")
  }
  if _, err := ReadPanelQuery(`{"genename": `); err == nil {
    t.Error("TestPanelQuery1 failed!")
  }
  if _, err := ReadPanelQuery(`{"transcript": "NM_100"}`); err == nil {
    t.Error("TestPanelQuery1 failed!")
  }
}

func TestPanelQuery2(t *testing.T) {

  query := PanelQuery{GeneName: "GENE_A"}
  if query.OutputFilename() != "GENE_A.bed" {
    t.Error("TestPanelQuery2 failed!")
  }
  query = PanelQuery{GeneName: "GENE_A", Exons: "<3,5-8"}
  if query.OutputFilename() != "GENE_A__3_5_8.bed" {
    t.Error("TestPanelQuery2 failed!")
  }
}

func TestPanelQuery3(t *testing.T) {

  queries, err := ReadPanelQueries(strings.NewReader(
    `[{"genename": "GENE_A"}, {"genename": "GENE_B", "exons": "1-2"}]`))
  if err != nil {
    t.Error(err)
  }
  if len(queries) != 2 {
    t.Error("TestPanelQuery3 failed!")
  }
  if _, err := ReadPanelQueries(strings.NewReader(`[{"exons": "1-2"}]`)); err == nil {
    t.Error("TestPanelQuery3 failed!")
  }
}

/* -------------------------------------------------------------------------- */

func TestPanel1(t *testing.T) {

  transcripts, err := ImportTranscripts("transcripts_test.txt")
  if err != nil {
    t.Error(err)
  }
  regions, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_A"}, false)
  if err != nil {
    t.Error(err)
  }
  if regions.Length() != 2 {
    t.Error("TestPanel1 failed!")
  }
  if regions.Ranges[0] != NewRange(1000, 1150) {
    t.Error("TestPanel1 failed!")
  }
  if regions.Ranges[1] != NewRange(1400, 2000) {
    t.Error("TestPanel1 failed!")
  }
  // without an exon selection entries are labeled with the exon count
  // of their transcript
  if regions.Names[0] != "total_exon_3,total_exon_2" {
    t.Error("TestPanel1 failed!")
  }
  if regions.Genes[0] != "GENE_A" {
    t.Error("TestPanel1 failed!")
  }
  if regions.Transcripts[0] != "NM_100,NM_101" {
    t.Error("TestPanel1 failed!")
  }
  if regions.Strand[0] != '+' {
    t.Error("TestPanel1 failed!")
  }
}

func TestPanel2(t *testing.T) {

  transcripts, err := ImportTranscripts("transcripts_test.txt")
  if err != nil {
    t.Error(err)
  }
  // on the minus strand the exon with the largest coordinates is
  // exon one if strand matching is enabled
  regions, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_B", Exons: "1-2"}, true)
  if err != nil {
    t.Error(err)
  }
  if regions.Length() != 2 {
    t.Error("TestPanel2 failed!")
  }
  if regions.Ranges[0] != NewRange(6000, 6200) || regions.Names[0] != "exon_num_2" {
    t.Error("TestPanel2 failed!")
  }
  if regions.Ranges[1] != NewRange(7000, 8000) || regions.Names[1] != "exon_num_1" {
    t.Error("TestPanel2 failed!")
  }
}

func TestPanel3(t *testing.T) {

  transcripts, err := ImportTranscripts("transcripts_test.txt")
  if err != nil {
    t.Error(err)
  }
  // without strand matching exons are numbered in coordinate order
  regions, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_B", Exons: "1-2"}, false)
  if err != nil {
    t.Error(err)
  }
  if regions.Length() != 2 {
    t.Error("TestPanel3 failed!")
  }
  if regions.Ranges[0] != NewRange(5000, 5200) || regions.Names[0] != "exon_num_1" {
    t.Error("TestPanel3 failed!")
  }
  if regions.Ranges[1] != NewRange(6000, 6200) || regions.Names[1] != "exon_num_2" {
    t.Error("TestPanel3 failed!")
  }
}

func TestPanel4(t *testing.T) {

  transcripts, err := ImportTranscripts("transcripts_test.txt")
  if err != nil {
    t.Error(err)
  }
  if _, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_X"}, false); err == nil {
    t.Error("TestPanel4 failed!")
  }
  if _, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_A", Transcript: "NM_999"}, false); err == nil {
    t.Error("TestPanel4 failed!")
  }
  if _, err := BuildPanel(transcripts, PanelQuery{GeneName: "GENE_A", Exons: "x"}, false); err == nil {
    t.Error("TestPanel4 failed!")
  }
}

func TestPanel5(t *testing.T) {

  transcripts, err := ImportTranscripts("transcripts_test.txt")
  if err != nil {
    t.Error(err)
  }
  queries := []PanelQuery{
    {GeneName: "GENE_A"},
    {GeneName: "GENE_B", Exons: "1-2"}}

  results, err := BuildPanels(transcripts, queries, false, 2)
  if err != nil {
    t.Error(err)
  }
  if len(results) != 2 {
    t.Error("TestPanel5 failed!")
  }
  if results[0].Length() != 2 || results[1].Length() != 2 {
    t.Error("TestPanel5 failed!")
  }
}
