// Package matcache pairs a dense linear-algebra core with a memoizing
// inversion cache: compute an inverse once, then serve it from memory until
// the data changes.
//
// 🚀 What is matcache?
//
//	A small, observable caching layer around matrix inversion:
//		• Dense matrices: construction, arithmetic, transpose, scaling
//		• Factorizations: LU (Doolittle) and PLU with partial pivoting
//		• Linear systems: Solve for general right-hand sides, Inverse via identity RHS
//		• Memoization: a single-slot cache that recomputes only when new data arrives
//		• Telemetry: cache-hit notices, counters, histograms and spans (OpenTelemetry)
//
// ✨ Why choose matcache?
//
//   - Small, guessable API – the whole surface fits in one reading
//   - Honest failures – singular data errors out and is never cached
//   - Swappable seams – loggers and telemetry providers are injected per cache
//   - Pure computation core – the matrix package carries no dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	invcache/ – the memoizing cache: Store/Data/StoreInverse/Inverse plus the Solve entry point
//	matrix/   – dense matrices, validators, LU/PLU, Solve/Inverse and comparison helpers
//
// Quick example:
//
//	c := invcache.New(a)
//	inv, _ := invcache.Solve(ctx, c) // computes and memoizes
//	inv, _ = invcache.Solve(ctx, c)  // "getting cached data": served from memory
//
// Next up: Cholesky for symmetric positive-definite inputs and a bounded
// multi-slot cache. Dive into the examples/ directory for a fully wired
// stdout telemetry pipeline.
//
//	go get github.com/katalvlaran/matcache
package matcache
