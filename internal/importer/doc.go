// Package importer converts batches of Notion mood-log exports into Day One
// entries.
//
// Inputs are expanded to note files with [ExpandInputs]. An [Importer] then
// reads each file, parses it with the notion package, resolves attachment
// paths relative to the note's directory, and hands the resulting
// [dayone.Entry] to a [dayone.Submitter]. Documents are processed one at a
// time in sorted order; a [Report] records the outcome of each.
package importer
