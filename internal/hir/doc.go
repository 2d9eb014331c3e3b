// Package hir holds the resolved program tree that attribute checking runs
// over: free items, trait/impl/foreign members, crate attributes, macro
// definitions and the attributed positions inside function bodies.
//
// The tree is produced upstream (by a parser and name resolver, or decoded
// from a crate document by package hirdoc) through Builder, and is read-only
// for every pass that consumes it. Attributes keep source order.
package hir
