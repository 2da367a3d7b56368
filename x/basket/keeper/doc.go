// Package keeper implements the basket module keeper.
//
// A basket is an N-asset pool under a generalized invariant
// D = Σ_i r_i * Π_{j≠i}(1 + r_i/r_j). Swaps price the output as the invariant
// drop caused by removing the input amount. Prices are refreshed from an
// injected oracle; asset movement goes through an injected settlement ledger
// keyed per asset. All mutating operations commit through a cache context and
// abort without partial writes on any sub-call failure.
package keeper
