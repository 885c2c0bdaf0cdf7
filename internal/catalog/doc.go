// Package catalog holds the setup table: parsing tab-separated rows into
// records, the ordered record store with its id lookup, and writing the
// table back with the mirror column filled in.
//
// Only the mirror link of a record changes after parsing. Every other
// column, including the ones this package does not interpret, is written
// back verbatim.
package catalog
