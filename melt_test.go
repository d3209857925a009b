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
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

const testMeltHeader = "#geneName\tname\tchrom\tstrand\ttxStart\ttxEnd\tcdsStart\tcdsEnd\texonCount\texonStarts\texonEnds\tscore\tname2\tcdsStartStat\tcdsEndStat\texonFrames"

func testMeltRow(count, starts, ends, frames string) string {
  return strings.Join([]string{
    "GENE1", "NM_1", "chr1", "+", "100", "500", "100", "500", count,
    starts, ends, "0", "GENE1", "cmpl", "cmpl", frames}, "\t")
}

func testMelt(input string) (string, error) {
  buffer := bytes.Buffer{}
  err := NewMelter().Melt(strings.NewReader(input), &buffer)
  return buffer.String(), err
}

/* -------------------------------------------------------------------------- */

func TestMelt1(t *testing.T) {

  input := testMeltHeader + "\n" +
    testMeltRow("2", "100,300,", "200,500,", "0,1,") + "\n"

  expected := testMeltHeader + "\n" +
    "GENE1\tNM_1\tchr1\t+\t100\t500\t100\t500\t2\t100\t200\t0\tGENE1\tcmpl\tcmpl\t0\n" +
    "GENE1\tNM_1\tchr1\t+\t100\t500\t100\t500\t2\t300\t500\t0\tGENE1\tcmpl\tcmpl\t1\n"

  output, err := testMelt(input)
  if err != nil {
    t.Error(err)
  }
  if output != expected {
    t.Error("TestMelt1 failed!")
  }
}

func TestMelt2(t *testing.T) {

  input := testMeltHeader + "\n" +
    testMeltRow("3", "10,20,30", "15,25,35", "0,1,2") + "\n"

  output, err := testMelt(input)
  if err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

  // header passthrough
  if lines[0] != testMeltHeader {
    t.Error("TestMelt2 failed!")
  }
  // one output row per exon, in exon order
  if len(lines) != 4 {
    t.Error("TestMelt2 failed!")
  }
  for i, expected := range []string{"10\t15\t", "20\t25\t", "30\t35\t"} {
    fields := strings.Split(lines[i+1], "\t")
    if len(fields) != 16 {
      t.Error("TestMelt2 failed!")
    }
    if fields[9]+"\t"+fields[10]+"\t" != expected {
      t.Error("TestMelt2 failed!")
    }
    // shared fields are repeated on every exon row
    if strings.Join(fields[0:9], "\t") != "GENE1\tNM_1\tchr1\t+\t100\t500\t100\t500\t3" {
      t.Error("TestMelt2 failed!")
    }
    if strings.Join(fields[11:15], "\t") != "0\tGENE1\tcmpl\tcmpl" {
      t.Error("TestMelt2 failed!")
    }
  }
}

func TestMelt3(t *testing.T) {

  input1 := testMeltHeader + "\n" +
    testMeltRow("3", "10,20,30,", "15,25,35,", "0,1,2,") + "\n"
  input2 := testMeltHeader + "\n" +
    testMeltRow("3", "10,20,30", "15,25,35", "0,1,2") + "\n"

  output1, err := testMelt(input1)
  if err != nil {
    t.Error(err)
  }
  output2, err := testMelt(input2)
  if err != nil {
    t.Error(err)
  }
  // a trailing list delimiter must not change the result
  if output1 != output2 {
    t.Error("TestMelt3 failed!")
  }
}

func TestMelt4(t *testing.T) {

  input := testMeltHeader + "\n" +
    testMeltRow("2", "100,300,", "200,500,", "0,1,") + "\n" +
    testMeltRow("2", "100,300,500,700", "200,500,", "0,1,") + "\n" +
    testMeltRow("2", "100,300,", "200,500,", "0,1,") + "\n"

  output, err := testMelt(input)
  if err == nil {
    t.Error("TestMelt4 failed!")
  }
  e, ok := err.(*CountMismatchError)
  if !ok {
    t.Error("TestMelt4 failed!")
  } else {
    if e.List     != "exonStarts" {
      t.Error("TestMelt4 failed!")
    }
    if e.Declared != 2 {
      t.Error("TestMelt4 failed!")
    }
    if e.Observed != 4 {
      t.Error("TestMelt4 failed!")
    }
    if e.Line     != 3 {
      t.Error("TestMelt4 failed!")
    }
    if e.Row      != testMeltRow("2", "100,300,500,700", "200,500,", "0,1,") {
      t.Error("TestMelt4 failed!")
    }
  }
  // rows preceding the offending one have been written, nothing after
  if len(strings.Split(strings.TrimRight(output, "\n"), "\n")) != 3 {
    t.Error("TestMelt4 failed!")
  }
}

func TestMelt5(t *testing.T) {

  input := testMeltHeader + "\n" +
    testMeltRow("0", "", "", "") + "\n" +
    testMeltRow("1", "100,", "200,", "0,") + "\n"

  expected := testMeltHeader + "\n" +
    "GENE1\tNM_1\tchr1\t+\t100\t500\t100\t500\t1\t100\t200\t0\tGENE1\tcmpl\tcmpl\t0\n"

  output, err := testMelt(input)
  if err != nil {
    t.Error(err)
  }
  // a declared exon count of zero emits no rows
  if output != expected {
    t.Error("TestMelt5 failed!")
  }
}

func TestMelt6(t *testing.T) {

  input := testMeltHeader + "\n" +
    testMeltRow("2", "100", "200,500,", "0,1,") + "\n"

  output, err := testMelt(input)
  if err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
  if len(lines) != 3 {
    t.Error("TestMelt6 failed!")
  }
  // a list shorter than the declared count passes the check and fans
  // out empty values
  fields := strings.Split(lines[2], "\t")
  if fields[9] != "" || fields[10] != "500" {
    t.Error("TestMelt6 failed!")
  }
}

func TestMelt7(t *testing.T) {

  input := testMeltHeader + "\textra\n" +
    testMeltRow("1", "100,", "200,", "0,") + "\textra1\textra2\n"

  expected := testMeltHeader + "\textra\n" +
    "GENE1\tNM_1\tchr1\t+\t100\t500\t100\t500\t1\t100\t200\t0\tGENE1\tcmpl\tcmpl\t0\n"

  output, err := testMelt(input)
  if err != nil {
    t.Error(err)
  }
  // columns beyond the 16th are dropped
  if output != expected {
    t.Error("TestMelt7 failed!")
  }
}

func TestMelt8(t *testing.T) {

  melter := NewMelter()

  if _, err := melter.MeltRow("a\tb\tc", 2); err == nil {
    t.Error("TestMelt8 failed!")
  }
  if _, err := melter.MeltRow(testMeltRow("x", "100,", "200,", "0,"), 2); err == nil {
    t.Error("TestMelt8 failed!")
  }
}
