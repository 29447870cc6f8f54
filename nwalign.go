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

// DefaultBandWidth is the default band half-width of banded alignment.
const DefaultBandWidth = 3

// Options contains the options of an Aligner.
type Options struct {
	// Banded restricts the alignment to cells near the main diagonal,
	// which is an approximation and fails when the lengths of
	// the two sequences differ by more than BandWidth.
	Banded bool

	// BandWidth is the band half-width d, the band covers 2d+1 cells per row.
	// 0 is valid and restricts the alignment to the main diagonal,
	// so a zero-value Options{Banded: true} only aligns sequences of equal length.
	// A negative value means DefaultBandWidth.
	BandWidth int
}

// DefaultOptions performs exact alignment.
var DefaultOptions = Options{
	Banded:    false,
	BandWidth: DefaultBandWidth,
}

// Aligner is the object for aligning,
// which can apply to multiple pairs of query and target sequences.
// It holds no state of previous alignments,
// so it is safe for concurrent use.
type Aligner struct {
	p   *Penalties
	opt *Options
}

// New returns a new Aligner with default penalties and options.
func New() *Aligner {
	return NewWithPenalties(&DefaultPenalties, &DefaultOptions)
}

// NewWithPenalties returns a new Aligner.
// Nil arguments are replaced by the defaults.
func NewWithPenalties(p *Penalties, opt *Options) *Aligner {
	if p == nil {
		p = &DefaultPenalties
	}
	if opt == nil {
		opt = &DefaultOptions
	}
	if opt.BandWidth < 0 {
		_opt := *opt
		_opt.BandWidth = DefaultBandWidth
		opt = &_opt
	}
	return &Aligner{p: p, opt: opt}
}

// Penalties returns the penalties used by the aligner.
func (algn *Aligner) Penalties() Penalties { return *algn.p }

// Options returns the options used by the aligner.
func (algn *Aligner) Options() Options { return *algn.opt }

// Align aligns the whole query q against the whole target t.
// The result should be recycled with RecycleAlignmentResult().
func (algn *Aligner) Align(q, t []byte) *AlignmentResult {
	if algn.opt.Banded {
		return algn.alignBanded(q, t)
	}
	return algn.alignFull(q, t)
}

// AlignPrefix aligns the first alignLength characters of seq1 and seq2,
// and reports the cost and the first ReportLength characters of the alignment.
// A negative alignLength means using the whole sequences.
func (algn *Aligner) AlignPrefix(seq1, seq2 []byte, alignLength int) *Result {
	res := algn.Align(truncate(seq1, alignLength), truncate(seq2, alignLength))
	r := res.Report()
	RecycleAlignmentResult(res)
	return r
}

// Align aligns the first alignLength characters of seq1 and seq2 with
// the default penalties, exactly or in a band of DefaultBandWidth.
//
// A banded alignment of sequences whose lengths differ by more than
// DefaultBandWidth returns a Result with an infinite cost
// and NoAlignment for both strings.
func Align(seq1, seq2 []byte, banded bool, alignLength int) *Result {
	opt := DefaultOptions
	opt.Banded = banded
	return NewWithPenalties(&DefaultPenalties, &opt).AlignPrefix(seq1, seq2, alignLength)
}
