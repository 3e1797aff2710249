// Package pkguid provides helpers for generating unique string identifiers,
// used for request correlation.
//
// The codebase depends on the StringID interface to avoid hard-coding a
// specific UID strategy. Numeric ids served to clients come from the
// snowflake module, not from this package.
package pkguid
