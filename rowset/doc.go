// Package rowset models the in-memory result set the duplicate filter
// operates on: typed row values, rows with an optional backing entity, the
// ordered collection with its running total, and the bitmap of row indices
// flagged for removal.
//
// The result set is owned by the surrounding query pipeline. This package
// mutates it in place (removal by index) and never renumbers the surviving
// rows: downstream consumers address rows by their original positional
// index, most notably the rendered-value pass.
package rowset
