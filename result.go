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
	"bytes"
	"strconv"
	"sync"
)

// NoAlignment is the text reported for both sequences when
// the banded alignment is infeasible.
const NoAlignment = "No Alignment Possible"

// ReportLength is the maximum length of aligned strings in a Result.
const ReportLength = 100

// AlignmentResult represent the complete result of a global alignment.
type AlignmentResult struct {
	Cost int // Alignment cost, Inf for an infeasible banded alignment

	Q, T []byte // Aligned query (seq1) and target (seq2), with gaps

	Ops []*CIGARRecord

	TBegin, TEnd int // 1-based location of the aligned region in target seq, no including flanking gaps
	QBegin, QEnd int // 1-based location of the aligned region in query seq, no including flanking gaps

	// Stats of the aligned region, no including flanking gaps
	AlignLen   uint32
	Matches    uint32
	Gaps       uint32
	GapRegions uint32

	proccessed bool
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// NewAlignmentResult returns a new AlignmentResult from the object pool.
func NewAlignmentResult() *AlignmentResult {
	res := poolResult.Get().(*AlignmentResult)
	res.reset()
	return res
}

// reset resets an AlignmentResult.
func (res *AlignmentResult) reset() {
	for _, r := range res.Ops {
		poolCIGARRecord.Put(r)
	}
	res.Ops = res.Ops[:0]
	res.Q = res.Q[:0]
	res.T = res.T[:0]
	res.Cost = 0
	res.proccessed = false

	res.TBegin, res.TEnd = 0, 0
	res.QBegin, res.QEnd = 0, 0
	res.AlignLen = 0
	res.Matches = 0
	res.Gaps = 0
	res.GapRegions = 0
}

// RecycleAlignmentResult recycles an AlignmentResult object.
func RecycleAlignmentResult(res *AlignmentResult) {
	if res != nil {
		poolResult.Put(res)
	}
}

// object pool of AlignmentResult.
var poolResult = &sync.Pool{New: func() interface{} {
	res := AlignmentResult{
		Ops: make([]*CIGARRecord, 0, 128),
		Q:   make([]byte, 0, 1024),
		T:   make([]byte, 0, 1024),
	}
	return &res
}}

// object pool of CIGARRecord.
var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// IsInf tells if the alignment is infeasible.
func (res *AlignmentResult) IsInf() bool {
	return res.Cost == Inf
}

// Add adds a new record in backtrace.
func (res *AlignmentResult) Add(op byte) {
	res.AddN(op, 1)
}

// AddN adds a new record in backtrace and set its number as n.
func (res *AlignmentResult) AddN(op byte, n uint32) {
	r := poolCIGARRecord.Get().(*CIGARRecord)
	r.Op = op
	r.N = n
	res.Ops = append(res.Ops, r)
}

// Update updates the last record.
func (res *AlignmentResult) Update(n uint32) {
	l := len(res.Ops)
	if l > 0 {
		res.Ops[l-1].N += n
	}
}

// addOp adds one operation, merging it with the last one if they are the same.
func (res *AlignmentResult) addOp(op byte) {
	l := len(res.Ops)
	if l > 0 && res.Ops[l-1].Op == op {
		res.Update(1)
		return
	}
	res.Add(op)
}

// process reverses the operations recorded in backtrace,
// and computes the stats of the aligned region.
func (res *AlignmentResult) process() {
	if res.proccessed {
		return
	}
	s := res.Ops

	// reverse the order of all operations.
	var i, j int
	for i, j = 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}

	// the aligned region starts from the first match/mismatch and ends at the last one.
	begin, end := -1, -1
	var op *CIGARRecord
	for i, op = range s {
		if op.Op == 'M' || op.Op == 'X' {
			begin = i
			break
		}
	}
	for i = len(s) - 1; i >= 0; i-- {
		op = s[i]
		if op.Op == 'M' || op.Op == 'X' {
			end = i
			break
		}
	}
	res.proccessed = true
	if begin < 0 {
		return
	}

	// positions before the aligned region
	var v, h int
	for i = 0; i < begin; i++ {
		op = s[i]
		switch op.Op {
		case 'I':
			h += int(op.N)
		case 'D':
			v += int(op.N)
		}
	}
	res.QBegin, res.TBegin = v+1, h+1

	var alen uint32
	var matches uint32
	var gaps uint32
	var gapRegions uint32

	for i = begin; i <= end; i++ {
		op = s[i]
		alen += op.N
		switch op.Op {
		case 'M':
			matches += op.N
			v += int(op.N)
			h += int(op.N)
		case 'X':
			v += int(op.N)
			h += int(op.N)
		case 'I':
			gaps += op.N
			gapRegions++
			h += int(op.N)
		case 'D':
			gaps += op.N
			gapRegions++
			v += int(op.N)
		}
	}
	res.QEnd, res.TEnd = v, h
	res.AlignLen = alen
	res.Matches = matches
	res.Gaps = gaps
	res.GapRegions = gapRegions
}

// Stats returns the stats of the aligned region.
func (res *AlignmentResult) Stats() (alignLen, matches, gaps, gapRegions uint32) {
	res.process()
	return res.AlignLen, res.Matches, res.Gaps, res.GapRegions
}

// CIGAR returns the CIGAR string.
func (res *AlignmentResult) CIGAR() string {
	res.process()
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range res.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// AlignmentText returns the formated alignment text for Query, Alignment, and Target.
// Do not forget to recycle them with RecycleAlignmentText().
func (res *AlignmentResult) AlignmentText() (*[]byte, *[]byte, *[]byte) {
	res.process()

	Q := poolBytes.Get().(*[]byte)
	A := poolBytes.Get().(*[]byte)
	T := poolBytes.Get().(*[]byte)

	*Q = append(*Q, res.Q...)
	*T = append(*T, res.T...)

	var i uint32
	for _, op := range res.Ops {
		switch op.Op {
		case 'M':
			for i = 0; i < op.N; i++ {
				*A = append(*A, '|')
			}
		default:
			for i = 0; i < op.N; i++ {
				*A = append(*A, ' ')
			}
		}
	}

	return Q, A, T
}

// Report packs the cost and the first ReportLength characters of
// the two aligned strings.
// An infeasible alignment is reported with NoAlignment for both strings.
func (res *AlignmentResult) Report() *Result {
	if res.IsInf() {
		return &Result{Cost: Inf, Seq1Aligned: NoAlignment, Seq2Aligned: NoAlignment}
	}
	return &Result{
		Cost:        res.Cost,
		Seq1Aligned: string(res.Q[:min(len(res.Q), ReportLength)]),
		Seq2Aligned: string(res.T[:min(len(res.T), ReportLength)]),
	}
}

// Result is the reported alignment.
type Result struct {
	Cost        int    // Inf if no alignment is possible
	Seq1Aligned string // at most ReportLength characters
	Seq2Aligned string // at most ReportLength characters
}

// IsInf tells if no alignment is possible.
func (r *Result) IsInf() bool {
	return r.Cost == Inf
}

// object pool of buffers.
var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 1024)
	return bytes.NewBuffer(buf)
}}

var poolBytes = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 0, 1024)
	return &buf
}}

// RecycleAlignmentText recycle alignment text.
func RecycleAlignmentText(Q, A, T *[]byte) {
	if Q != nil {
		*Q = (*Q)[:0]
		poolBytes.Put(Q)
	}
	if A != nil {
		*A = (*A)[:0]
		poolBytes.Put(A)
	}
	if T != nil {
		*T = (*T)[:0]
		poolBytes.Put(T)
	}
}
