// Package: ghertil/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Cost per included edge: cfg.weightFn(cfg.rng), drawn right after the
//     Bernoulli trial that selected it.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ghertil/core"
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		// RNG is only required for true stochastic sampling.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(MethodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err := setEdge(MethodRandomSparse, g, cfg, cfg.weightFn, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli reports one trial with success probability p. The extreme
// probabilities consume no randomness.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
