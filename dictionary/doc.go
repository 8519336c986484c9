// Package dictionary holds the word sets a ladder search runs over.
//
// A Dictionary is an immutable set of normalized words with O(1) membership
// and a deterministic, sorted iteration order. Load and LoadFile build one
// from a whitespace-separated word list, lowercasing every token.
//
// A Remaining is the mutable working copy a single search owns: the same
// words partitioned by length, with Take removing a word the moment a search
// consumes it. A Remaining must not be shared between goroutines; build one
// per search from the shared, read-only Dictionary.
package dictionary
