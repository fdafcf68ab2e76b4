// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"slices"

	"github.com/inpsyde/multilingual-press-sub005/pkg/header"
)

// Normalized pairs an input token with its canonical form.
type Normalized struct {
	Input   string `json:"input" yaml:"input"`
	Version string `json:"version" yaml:"version"`
}

// List is a document of normalized version tokens.
type List struct {
	header.Header `json:",inline" yaml:",inline"`

	Sorted   bool         `json:"sorted" yaml:"sorted"`
	Versions []Normalized `json:"versions" yaml:"versions"`
}

// NewList normalizes inputs. When sorted is set the entries are ordered by
// precedence; ties keep their input order.
func NewList(inputs []string, sorted bool, toolVersion string) *List {
	nums := make([]Number, len(inputs))
	idx := make([]int, len(inputs))
	for i, in := range inputs {
		nums[i] = Parse(in)
		idx[i] = i
	}

	if sorted {
		slices.SortStableFunc(idx, func(x, y int) int {
			return nums[x].Compare(nums[y])
		})
	}

	l := &List{Sorted: sorted, Versions: make([]Normalized, 0, len(inputs))}
	l.Init(header.KindVersionList, header.DefaultAPIVersion, toolVersion)
	for _, i := range idx {
		l.Versions = append(l.Versions, Normalized{Input: inputs[i], Version: nums[i].String()})
	}
	return l
}

// Comparison is a document describing the comparison of two versions.
// Result is only set when an operator was given.
type Comparison struct {
	header.Header `json:",inline" yaml:",inline"`

	A       string `json:"a" yaml:"a"`
	B       string `json:"b" yaml:"b"`
	Op      string `json:"op,omitempty" yaml:"op,omitempty"`
	Result  *bool  `json:"result,omitempty" yaml:"result,omitempty"`
	Compare int    `json:"compare" yaml:"compare"`
}

// NewComparison normalizes a and b and compares them. A non-empty op is
// evaluated as "a op b"; an unknown operator is an ErrCodeInvalidRequest.
func NewComparison(a, b, op, toolVersion string) (*Comparison, error) {
	na, nb := Parse(a), Parse(b)
	c := &Comparison{
		A:       na.String(),
		B:       nb.String(),
		Compare: na.Compare(nb),
	}
	c.Init(header.KindVersionComparison, header.DefaultAPIVersion, toolVersion)

	if op == "" {
		return c, nil
	}

	o, err := ParseOperator(op)
	if err != nil {
		return nil, err
	}
	holds := o.Holds(c.Compare)
	c.Op = string(o)
	c.Result = &holds
	return c, nil
}

// Holds reports whether the comparison's operator was satisfied. Without an
// operator it is false.
func (c *Comparison) Holds() bool {
	return c.Result != nil && *c.Result
}
