// Package sqlerr specifically handles database driver errors.
//
// It inspects failures coming out of the storage layer and decides,
// exactly once per request, how the client sees them:
//
//   - a failure carrying a PostgreSQL error descriptor becomes a Conflict
//     (409) with the database message and its SQLSTATE;
//   - anything else becomes an opaque Internal error (500).
package sqlerr
