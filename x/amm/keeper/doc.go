// Package keeper implements the amm module keeper.
//
// The amm module is a two-asset constant-product market maker. Pools hold
// reserves in a shared module wallet; provider positions track cumulative
// contributions and LP share claims; trading and withdrawal fees accrue as
// per-provider earned fee balances distributed pro-rata by contribution.
//
// Every public operation reads state fresh from the store and commits through
// a cache context, so a failed settlement call or validation error leaves no
// partial write. Ordering between operations on the same pool is established
// by the surrounding store's transaction ordering; the keeper performs no
// locking of its own.
package keeper
