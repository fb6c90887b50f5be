// SPDX-License-Identifier: MIT

// Package obst computes optimal binary search trees over exact fractions.
//
// 🚀 What is an optimal BST?
//
//	Given sorted keys k0 < k1 < … < kn-1 and access weights w0…wn-1, it is the
//	binary search tree minimizing Σ wi · depth(ki) (root depth = 1).
//
// Algorithm Outline:
//  1. Build prefix sums so sum(i,j) = prefix[j+1] - prefix[i] is O(1).
//  2. Fill cost[i][j] and root[i][j] for every range, in waves of increasing
//     length L = j-i+1:
//     cost(i,j) = sum(i,j) + min over r in [i,j] of cost(i,r-1) + cost(r+1,j)
//     root(i,j) = smallest r reaching that minimum (strict less-than).
//  3. Walk root[][] from [0,n-1] to materialize the tree.
//
// ✨ Wavefront parallelism:
//
//	All cells of one wave are independent: they read only shorter ranges.
//	Each wave's row range is split into contiguous chunks, one per worker,
//	and every worker joins a barrier before the next wave starts. The tables
//	are identical for every worker count.
//
// ⚙️ Usage:
//
//	res, err := obst.BuildTree(keys, weights, obst.WithWorkers(4))
//	if err != nil {
//	  // ErrInputLengthMismatch, ErrInvalidWorkerCount, fraction.ErrOverflow, …
//	}
//	fmt.Println(res.TotalCost(), res.Tree().LevelOrder())
//
// Complexity:
//
//   - Time:   O(n³) cell work, O(n) waves
//   - Memory: O(n²) for the tables (released after the tree is built), O(n) for the tree
package obst
