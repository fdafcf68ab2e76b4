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
	"fmt"
	"strings"

	"github.com/inpsyde/multilingual-press-sub005/pkg/errors"
)

// Operator represents a comparison operator between two version numbers.
type Operator string

const (
	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorEQ represents "==" (same precedence).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (different precedence).
	OperatorNE Operator = "!="
)

// operatorAliases maps every accepted spelling to its canonical operator.
var operatorAliases = map[string]Operator{
	"<":  OperatorLT,
	"lt": OperatorLT,
	"<=": OperatorLTE,
	"le": OperatorLTE,
	">":  OperatorGT,
	"gt": OperatorGT,
	">=": OperatorGTE,
	"ge": OperatorGTE,
	"==": OperatorEQ,
	"=":  OperatorEQ,
	"eq": OperatorEQ,
	"!=": OperatorNE,
	"<>": OperatorNE,
	"ne": OperatorNE,
}

// SupportedOperators returns the canonical operator spellings.
func SupportedOperators() []string {
	return []string{
		string(OperatorLT),
		string(OperatorLTE),
		string(OperatorGT),
		string(OperatorGTE),
		string(OperatorEQ),
		string(OperatorNE),
	}
}

// ParseOperator resolves an operator spelling such as ">=", "ge" or "<>".
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseOperator(s string) (Operator, error) {
	op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown comparison operator", map[string]any{
				"operator":  s,
				"supported": SupportedOperators(),
			})
	}
	return op, nil
}

// Holds reports whether a Compare result satisfies the operator.
func (o Operator) Holds(c int) bool {
	switch o {
	case OperatorLT:
		return c < 0
	case OperatorLTE:
		return c <= 0
	case OperatorGT:
		return c > 0
	case OperatorGTE:
		return c >= 0
	case OperatorEQ:
		return c == 0
	case OperatorNE:
		return c != 0
	default:
		return false
	}
}

// CompareWith normalizes a and b and evaluates "a op b".
func CompareWith(a, op, b string) (bool, error) {
	o, err := ParseOperator(op)
	if err != nil {
		return false, err
	}
	return o.Holds(Compare(a, b)), nil
}

// Constraint is a parsed version requirement such as ">= 4.0".
type Constraint struct {
	Operator Operator
	Version  Number
}

// ParseConstraint parses a constraint expression.
// Examples:
//   - ">= 5.2.4" -> {Operator: ">=", Version: 5.2.4}
//   - "<4.7"     -> {Operator: "<", Version: 4.7.0}
//   - "4.0"      -> {Operator: ">=", Version: 4.0.0}
func ParseConstraint(expr string) (Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Constraint{}, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	// longest first so ">=" is not read as ">"
	symbols := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}

	c := Constraint{Operator: OperatorGTE}
	value := expr
	for _, op := range symbols {
		if strings.HasPrefix(expr, string(op)) {
			c.Operator = op
			value = strings.TrimSpace(strings.TrimPrefix(expr, string(op)))
			break
		}
	}
	if value == "" {
		return Constraint{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"constraint version cannot be empty after operator", map[string]any{"expression": expr})
	}

	c.Version = Parse(value)
	return c, nil
}

// Satisfied reports whether v meets the constraint.
func (c Constraint) Satisfied(v Number) bool {
	return c.Operator.Holds(v.Compare(c.Version))
}

// String returns a string representation of the constraint.
func (c Constraint) String() string {
	return fmt.Sprintf("%s %s", c.Operator, c.Version)
}
