// Package diagnostic collects the non-fatal advisories produced while
// reconciling sources: unmatched DB mappings, empty field names, orphan rows
// and overlay entries that matched nothing. Diagnostics never block import of
// the generated records.
package diagnostic
