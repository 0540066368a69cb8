// Package localstore implements the page-scoped persistent key/value store:
// the substrate that survives restarts and is private to one origin.
//
// Two backends satisfy Repository:
//
//   - SQLiteRepository: a single table managed by goose migrations
//     (see OpenSQLite), using the pure-Go modernc.org/sqlite driver;
//   - BoltRepository: one BBolt bucket (see OpenBolt).
//
// PageStore adapts a Repository to the string-valued substrate contract the
// reconciler consumes. Values never expire; the ttl argument is ignored.
//
// Get returns (nil, nil) when a key is absent. Delete of an absent key is
// not an error.
package localstore
