// Package store implements the repositories the shop persists its state to.
//
// Each repository holds the whole state of one store and overwrites it on
// every save. JSONFile keeps one indented JSON file per store, SQLite keeps
// one JSON document per store in a single database file.
package store
