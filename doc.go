// SPDX-License-Identifier: MIT

// Package optbst builds optimal binary search trees over exact fractions,
// filling the dynamic-programming table in parallel waves.
//
// 🚀 What is optbst?
//
//	A small, deterministic library plus CLI that brings together:
//		• fraction - exact int64 rationals with overflow detection
//		• obst     - prefix sums, cost/root table, wavefront scheduler, tree builder
//		• loader   - "key weight" text and YAML input
//		• report   - timing plus text / JSON / msgpack rendering
//
// ✨ Why exact fractions?
//
//   - No floating-point drift: ties between split points are real ties
//   - Deterministic shapes: the smallest minimizing split always wins
//   - Same tables for 1 or 64 workers
//
// Under the hood:
//
//	fraction/     - Fraction value type
//	obst/         - BuildTree, FillTable, Tree traversal
//	loader/       - input parsing (text, YAML)
//	report/       - snapshots and renderers
//	internal/cli/ - cobra commands (build, compare, version)
//	cmd/optbst/   - main
//
// Quick ASCII example (weights 4, 2, 6, 3 → cost 26):
//
//	    30
//	   /  \
//	  10   40
//	    \
//	     20
//
//	go install github.com/katalvlaran/optbst/cmd/optbst@latest
package optbst
