/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package numstat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/fentec-project/numstat/data"
	"github.com/pkg/errors"
)

// parseFloats parses each of strs as a float64.
func parseFloats(strs []string) (data.Vector, error) {
	res := make(data.Vector, 0, len(strs))
	for _, s := range strs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse %q as a number", s)
		}
		res = append(res, v)
	}

	return res, nil
}

// parseList parses a comma-separated list of numbers.
func parseList(s string) (data.Vector, error) {
	if s == "" {
		return data.Vector{}, nil
	}

	return parseFloats(strings.Split(s, ","))
}

// readFloats reads whitespace-separated numbers from r.
func readFloats(r io.Reader) (data.Vector, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read input")
	}

	return parseFloats(fields)
}
