// Package signing computes signature domains and signing roots for builder
// API messages and signs or verifies them with BLS. Each chain's builder
// domain is checked against its derivation when the package is loaded.
package signing
