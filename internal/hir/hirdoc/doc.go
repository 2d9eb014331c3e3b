// Package hirdoc reads and writes crate documents, the serialised program
// trees the checker consumes. YAML, JSON and MessagePack encodings share one
// schema; Build validates a decoded document and turns it into a hir.Crate.
package hirdoc
