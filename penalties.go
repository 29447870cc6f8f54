// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package nwalign

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Penalties contains the costs of the three operations.
// A negative Match cost is a reward.
type Penalties struct {
	Match    int `yaml:"match"`
	Mismatch int `yaml:"mismatch"`
	Gap      int `yaml:"gap"`
}

// DefaultPenalties rewards matches and makes a gap cost more than a mismatch.
var DefaultPenalties = Penalties{
	Match:    -3,
	Mismatch: 1,
	Gap:      5,
}

// Diff returns the cost of aligning a against b.
func (p *Penalties) Diff(a, b byte) int {
	if a == b {
		return p.Match
	}
	return p.Mismatch
}

// ReadPenalties reads penalties from a YAML file, e.g.,
//
//	match: -3
//	mismatch: 1
//	gap: 5
//
// Fields missing in the file keep the values of DefaultPenalties.
func ReadPenalties(file string) (*Penalties, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read penalties file %s: %w", file, err)
	}

	p := DefaultPenalties
	if err = yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse penalties file %s: %w", file, err)
	}
	return &p, nil
}

// String returns a one-line summary of the penalties.
func (p Penalties) String() string {
	return fmt.Sprintf("match: %d, mismatch: %d, gap: %d", p.Match, p.Mismatch, p.Gap)
}
