package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// commitSeq orders primitives by the moment they were committed.
var commitSeq uint64

func nextSeq() uint64 {
	return atomic.AddUint64(&commitSeq, 1)
}

func stamp(style Style) Meta {
	return Meta{
		ID:    uuid.NewString(),
		Seq:   nextSeq(),
		Color: style.Color,
		Scale: style.Scale,
	}
}
