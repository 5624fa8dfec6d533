// Package inspect formats parameters, arrays and state tables for
// human-readable diagnostic output. The Formatter produces plain text;
// presentation (colors, boxes) is the caller's concern.
package inspect
