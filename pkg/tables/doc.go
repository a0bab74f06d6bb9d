// Package tables provides the BUFR edition 4 descriptor tables.
//
// Tables B (element descriptors), C (operator descriptors) and D (sequence
// descriptors) are distributed by the WMO as delimited text files and
// converted into the static Go arrays in this package by the bufr-tablegen
// tool. All entries are constructed once at generation time and are
// read-only reference data for a downstream decoder.
//
// The package also provides the FXY descriptor codec shared by the table
// builders, a keyed lookup Set over the three tables, and sequence
// resolution (expansion of sequence and replication descriptors into their
// element-level form).
package tables
