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
import   "bytes"
import   "testing"

/* -------------------------------------------------------------------------- */

func testRegions() Regions {
  r := NewEmptyRegions(0)
  r.Seqnames    = []string{"chr2", "chr1", "chr1", "chr1"}
  r.Ranges      = []Range{NewRange(100, 200), NewRange(250, 300), NewRange(100, 200), NewRange(150, 250)}
  r.Strand      = []byte{'+', '-', '+', '+'}
  r.Names       = []string{"D", "C", "A", "C"}
  r.Genes       = []string{"G2", "G1", "G1", "G1"}
  r.Transcripts = []string{"T4", "T3", "T1", "T2"}
  r.Scores      = []int{0, 0, 0, 0}
  return r
}

/* -------------------------------------------------------------------------- */

func TestRegions1(t *testing.T) {

  r := testRegions().Sort()

  if r.Seqnames[0] != "chr1" || r.Seqnames[3] != "chr2" {
    t.Error("TestRegions1 failed!")
  }
  if r.Ranges[0] != NewRange(100, 200) {
    t.Error("TestRegions1 failed!")
  }
  if r.Names[0] != "A" || r.Names[1] != "C" || r.Names[2] != "C" {
    t.Error("TestRegions1 failed!")
  }
}

func TestRegions2(t *testing.T) {

  r := testRegions().Merge()

  // chr1: [100,200) and [150,250) overlap, [250,300) is book-ended
  if r.Length() != 2 {
    t.Error("TestRegions2 failed!")
  }
  if r.Seqnames[0] != "chr1" || r.Ranges[0] != NewRange(100, 300) {
    t.Error("TestRegions2 failed!")
  }
  // distinct labels are collapsed in order of appearance
  if r.Names[0] != "A,C" {
    t.Error("TestRegions2 failed!")
  }
  if r.Genes[0] != "G1" {
    t.Error("TestRegions2 failed!")
  }
  if r.Transcripts[0] != "T1,T2,T3" {
    t.Error("TestRegions2 failed!")
  }
  // conflicting strands collapse to `*'
  if r.Strand[0] != '*' {
    t.Error("TestRegions2 failed!")
  }
  if r.Seqnames[1] != "chr2" || r.Strand[1] != '+' {
    t.Error("TestRegions2 failed!")
  }
}

func TestRegions3(t *testing.T) {

  r := testRegions().Merge()

  buffer := bytes.Buffer{}
  if err := r.WriteBed6(&buffer); err != nil {
    t.Error(err)
  }
  expected :=
    "chr1\t100\t300\tA,C\t0\t.\n" +
    "chr2\t100\t200\tD\t0\t+\n"
  if buffer.String() != expected {
    t.Error("TestRegions3 failed!")
  }

  buffer.Reset()
  if err := r.WriteTable(&buffer, false); err != nil {
    t.Error(err)
  }
  expected =
    "chr1\t100\t300\tA,C\t.\tG1\tT1,T2,T3\n" +
    "chr2\t100\t200\tD\t+\tG2\tT4\n"
  if buffer.String() != expected {
    t.Error("TestRegions3 failed!")
  }
}
