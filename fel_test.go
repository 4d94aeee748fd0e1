// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

package simkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFELOrdersByTimeThenSeq(t *testing.T) {
	f := newFEL()

	f.schedule(&Event{}, 5)
	f.schedule(&Event{}, 1)
	f.schedule(&Event{}, 1)
	f.schedule(&Event{}, 3)

	var times []SimTime
	var seqs []uint64
	for !f.empty() {
		qe := f.pop()
		times = append(times, qe.time)
		seqs = append(seqs, qe.seq)
	}

	require.Equal(t, []SimTime{1, 1, 3, 5}, times)
	require.Equal(t, []uint64{1, 2, 3, 0}, seqs)
}

func TestFELEmpty(t *testing.T) {
	f := newFEL()
	require.True(t, f.empty())
	f.schedule(&Event{}, 0)
	require.False(t, f.empty())
}
