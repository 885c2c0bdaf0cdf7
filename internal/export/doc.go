// Package export writes the results of a pairing pass outside the setup
// table: a SQLite copy of the catalog and a YAML report of the pass.
package export
