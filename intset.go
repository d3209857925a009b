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
import "sort"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// ParseIntSet expands an exon selection expression into a sorted list of
// unique integers. The expression is a comma separated list of plain
// integers and ranges `a-b' (in either order); `<n' is shorthand for
// `1-n'. Example: `<3,5-8,12'. Invalid tokens are reported together in a
// single error.
func ParseIntSet(str string) ([]int, error) {
  selection := []int{}
  invalid   := []string{}

  for _, token := range strings.Split(str, ",") {
    token = strings.TrimSpace(token)
    if len(token) == 0 {
      continue
    }
    if token[0] == '<' {
      token = fmt.Sprintf("1-%s", token[1:])
    }
    // typically tokens are plain integers
    if v, err := strconv.Atoi(token); err == nil {
      selection = append(selection, v)
      continue
    }
    // otherwise it might be a range
    parts  := strings.Split(token, "-")
    values := make([]int, len(parts))
    ok     := len(parts) > 1
    for i := 0; i < len(parts) && ok; i++ {
      if v, err := strconv.Atoi(strings.TrimSpace(parts[i])); err != nil {
        ok = false
      } else {
        values[i] = v
      }
    }
    if !ok {
      invalid = append(invalid, token)
      continue
    }
    sort.Ints(values)
    for v := values[0]; v <= values[len(values)-1]; v++ {
      selection = append(selection, v)
    }
  }
  if len(invalid) > 0 {
    return nil, fmt.Errorf("invalid exon selection tokens: %s", strings.Join(invalid, ", "))
  }
  selection = removeDuplicatesInt(selection)
  sort.Ints(selection)

  return selection, nil
}
