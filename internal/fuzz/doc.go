// Package fuzztests houses Go fuzz harnesses for the crate document
// pipeline: decode, build, attribute-form gate and attribute checker. They
// guard against panics on arbitrary documents; diagnostics are ignored.
package fuzztests
