// Package builder holds the builder API JSON encodings of the messages the
// signing package signs and verifies.
package builder
