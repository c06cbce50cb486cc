// Package edgelist decodes the compact text form of a latency network,
// records such as "AB5, BC4 CD8", into a core.Graph ready for querying.
//
// Format:
//
//   - Records are separated by commas and/or whitespace, mixed freely;
//     empty fields between separators are ignored.
//   - A record is exactly two letter runes, the from and to nodes, followed
//     by the edge latency as a non-negative decimal integer: "AB5" is the
//     edge A→B with latency 5. Any letter rune works, not only ASCII.
//
// Why:
//
//   - Only this package knows the text format. The core package consumes
//     decoded edges and never sees record syntax, so other front ends can
//     feed the same graph without touching the parser.
//   - Decoding is fail-fast and all-or-nothing: records are validated
//     before the graph is constructed, and the first malformed record
//     aborts the build. A partially-built network answers queries
//     confidently and wrongly, which is worse than no network.
//
// Errors:
//
//   - ErrEmptyInput       input holds no records at all
//   - ErrMalformedRecord  a record violates the format; the message names
//     the record and its 1-based position
//
// Duplicate records are not a parse concern: core.NewGraph resolves them
// with last-write-wins semantics.
package edgelist
