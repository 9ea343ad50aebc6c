package sat

import (
	"math/bits"
	"sync"
)

// Number of bucketed pools. litPoolID routes a capacity between 2^i and
// 2^(i+1)-1 inclusive to pool i (capacities below 2 go to pool 0), and every
// capacity of 2^(nLitPools-1) or more to the last pool. Pool i's New makes
// slices of capacity 2^(i+1); allocLiteralSlice makes a fresh slice when a
// pooled one is too small for the request.
const nLitPools = 6

const lastPoolCapa = 1 << nLitPools

var litPools = [nLitPools]sync.Pool{}

func init() {
	for i := 0; i < nLitPools; i++ {
		capa := 1 << (i + 1)
		litPools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

func litPoolID(capa int) int {
	if capa >= lastPoolCapa {
		return nLitPools - 1
	}
	id := bits.Len(uint(capa)) - 1
	if capa < (1 << id) {
		id--
	}
	if id < 0 {
		id = 0
	}
	return id
}

// allocLiteralSlice returns an empty slice with at least the requested
// capacity, reused from a size-bucketed pool. Clauses are short-lived
// relative to a worker's whole run (learnt clauses get detached and
// re-created constantly under reduction), so pooling their backing arrays
// avoids handing a large amount of garbage to the collector on the hot
// conflict-analysis path.
func allocLiteralSlice(capa int) *[]Literal {
	ref := litPools[litPoolID(capa)].Get().(*[]Literal)
	if capa <= lastPoolCapa && cap(*ref) >= capa {
		return ref
	}
	if cap(*ref) < capa {
		s := make([]Literal, 0, capa)
		return &s
	}
	return ref
}

// freeLiteralSlice returns the slice to its bucket pool for reuse.
func freeLiteralSlice(s *[]Literal) {
	*s = (*s)[:0]
	litPools[litPoolID(cap(*s))].Put(s)
}
