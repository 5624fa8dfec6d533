// Package codec serializes Parameter snapshots to and from CBOR bytes.
//
// A Snapshot carries everything needed to reconstruct a Parameter: the
// channel metadata, the raw codes with their mask, and the state table.
// Snapshots use integer CBOR keys for compactness and carry a version
// field and a recording identifier. The package deals in byte slices
// only; where those bytes live is the caller's concern.
package codec
