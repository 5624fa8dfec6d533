// Package statetable parses recorded-channel definition tables: the
// code-to-label state tables and channel metadata (name, frequency,
// offset, bus flag) from which Parameters are built.
//
// Tables are YAML documents; JSON documents parse as well since YAML is
// a superset. A minimal table:
//
//	version: 1
//	channels:
//	  - name: Gear Selected Down
//	    frequency: 2
//	    states:
//	      0: "Up"
//	      1: "Down"
//	    values: [1, 1, 0]
//	    mask: [false, false, true]
//
// Duplicate labels across codes are an accepted ambiguity of the data
// format: parsing reports them through the configured Logger and keeps
// going (reverse lookup is last-defined-wins, see parameter.NewStateMapping).
package statetable
