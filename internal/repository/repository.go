// Package repository handles all interactions with the database.
//
// Every operation runs exactly one named statement from queries/*.sql on
// the injected pool. Errors are wrapped with the operation name and left
// unclassified, except for the missing-row case of a read, which is
// reported as NotFound here.
package repository
