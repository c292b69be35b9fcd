// Package domain defines the core entities of the roster system and the
// validation rules that hold regardless of how an entity arrived (API
// payload, test fixture, migration backfill). Cross-entity rules such as
// foreign-key existence live in the service layer, which is the only place
// that can consult the store.
package domain
