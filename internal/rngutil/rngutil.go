// Copyright © 2024 simkernel authors. Licensed under the MIT license. See
// the LICENSE file for details.

// Package rngutil provides the pseudo-random sampling the example models
// need (interarrival and service times). It is deliberately outside the
// simkernel package: the kernel's contract with a model is only that the
// model may create events and inspect simulation time, never that it
// dictates where randomness comes from.
package rngutil

import "golang.org/x/exp/rand"

// Exponential is a source of exponentially-distributed variates with a
// given mean, used for interarrival and service times.
type Exponential struct {
	rng  *rand.Rand
	mean float64
}

// NewExponential returns an Exponential sampler seeded deterministically
// from seed, so a run can be reproduced for debugging.
func NewExponential(mean float64, seed uint64) *Exponential {
	return &Exponential{
		rng:  rand.New(rand.NewSource(seed)),
		mean: mean,
	}
}

// Next draws the next variate.
func (e *Exponential) Next() float64 {
	return e.rng.ExpFloat64() * e.mean
}
