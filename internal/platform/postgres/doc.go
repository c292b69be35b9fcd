// Package postgres contains the PostgreSQL implementations of the store
// interfaces. Each store accepts a store.DBTX so it can run against either
// a connection pool or an open transaction, and maps PostgreSQL error codes
// onto the store package's sentinel errors.
package postgres
