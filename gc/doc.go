// Package gc implements the object heap of an embedded Scheme-like
// interpreter: a tracing mark-and-sweep collector over a heterogeneous set of
// object variants (pairs, vectors, strings, dictionaries, ephemeron-style
// weak maps, environments, records, host-owned opaque data, compiled-code
// contexts, ...), plus the root registry ("arena") embedders use in place of
// precise stack scanning.
//
// The collector is single-threaded and stop-the-world: exactly one mutator
// calls into a Heap at a time, and a collection runs to completion before
// control returns to the caller. There is no generational, incremental,
// concurrent, or moving collection, and no compaction.
package gc
