// Package mem allocates column storage.
//
// # Aligned Allocation
//
// Aligned returns empty slices whose backing array starts on a 64-byte cache
// line, so preallocated columns do not share their first line with
// unrelated data and shard windows of CacheLine-multiple sizes start aligned.
package mem
