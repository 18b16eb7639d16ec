// Package sets provides memory-efficient unordered sets built on open
// addressing with linear probing.
//
// Three containers share one probing algorithm:
//
//   - CompactSet stores any comparable value directly in a slot array.
//   - IntCompactSet stores integers and reserves one in-band value of the
//     integer domain as the empty-slot marker, moving it whenever a caller
//     inserts that value.
//   - PagedIntSet splits 32-bit keys into 64K-key pages, each a 16-bit
//     sentinel table, so sparse key spaces stay compact.
//
// Removal never leaves tombstones: entries that follow the freed slot in its
// cluster are shifted back to the slot a fresh probe would find.
//
// Sets are not safe for concurrent use. Callers must serialize access.
package sets
