package merklelog

import (
	"context"

	"github.com/bankaixyz/mmr/digest"
)

// BatchAppend adds values in order with a single load and a single atomic
// commit, producing a final state byte-identical to appending each value in
// sequence.
func (l *Log) BatchAppend(ctx context.Context, values []digest.Hash32) (BatchAppendResult, error) {
	return l.doAppend(ctx, values)
}
