// Package parameter implements the core data model for recorded flight
// parameters: masked sample arrays whose integer codes carry symbolic
// state labels.
//
// # Mapped Masked Arrays
//
// A MappedArray holds three parallel views of one sample series:
//
//	raw codes    []int64  the sample values as recorded
//	validity     []bool   per-sample mask (false = invalid, must not be read)
//	state labels          derived via an optional StateMapping
//
// Reads and writes accept codes and labels interchangeably. A read of a
// valid sample whose code is known to the mapping yields the label; an
// invalid sample yields the Masked sentinel; a valid sample with no label
// yields StateUnknown ("?"), which is a legitimate outcome for recorded
// data, not an error.
//
// # State Mappings
//
// A StateMapping is an immutable bidirectional association between codes
// and labels, built once and shared freely between arrays (slicing shares
// the parent's mapping). The forward table is authoritative; when two
// codes share a label, reverse lookup resolves to the highest code
// (last-defined-wins over ascending codes).
//
// # Slicing Discipline
//
// Slice and Raw return independent arrays with copied buffers. Mutating a
// slice never affects the array it was taken from.
//
// # Parameters
//
// A Parameter is a plain metadata container: a channel name, sampling
// frequency, timing offset, an optional ARINC 429 bus flag, and the held
// array. Array returns the label view, RawArray the code view.
//
// All types are plain in-memory values. Concurrent mutation of one array
// must be serialized by the caller; read-only sharing of a StateMapping
// is safe.
package parameter
