// Package registry reads and rewrites a host application's extension registry
// (extensions.json). It loads the document as raw entries, upserts exactly one
// entry for a target extension under an insert-if-absent or replace policy,
// and writes the result back through a temp file so a failed write never
// truncates the original. Entries for other extensions keep their bytes and
// their relative order.
package registry
