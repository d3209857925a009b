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
import "compress/gzip"
import "io"
import "io/ioutil"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    io.Copy(w, r)
    w.Close()
  } else {
    w := bufio.NewWriter(&buffer)
    io.Copy(w, r)
    w.Flush()
  }
  return ioutil.WriteFile(filename, buffer.Bytes(), 0666)
}

func isGzip(filename string) bool {

  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  n, err := f.Read(b)
  if err != nil {
    return false
  }

  if n == 2 && b[0] == 31 && b[1] == 139 {
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

// Split a comma separated list of integers as found in the exonStarts,
// exonEnds, and exonFrames columns. A trailing comma yields an empty
// last element, which is dropped.
func parseIntList(str string) ([]int, error) {
  data := strings.Split(str, ",")
  if k := len(data); k > 0 && data[k-1] == "" {
    data = data[0:k-1]
  }
  result := make([]int, len(data))
  for i := 0; i < len(data); i++ {
    v, err := strconv.ParseInt(data[i], 10, 64)
    if err != nil {
      return nil, err
    }
    result[i] = int(v)
  }
  return result, nil
}

func formatIntList(values []int) string {
  var buffer bytes.Buffer

  for i := 0; i < len(values); i++ {
    buffer.WriteString(strconv.Itoa(values[i]))
    buffer.WriteString(",")
  }
  return buffer.String()
}

/* -------------------------------------------------------------------------- */

func removeDuplicatesInt(s []int) []int {
  m := map[int]bool{}
  r := []int{}

  for _, v := range s {
    if m[v] != true {
      m[v] = true
      r    = append(r, v)
    }
  }
  return r
}
