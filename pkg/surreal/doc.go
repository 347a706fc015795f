// Package surreal models the SurrealDB value types that a client receives from
// or sends to the database: decimals, durations, futures, geometries, ranges
// with their bounds, record identifiers, tables and UUIDs.
//
// Every type implements Value and reports a Kind. Kinds are the discriminator
// used by validators to tell the types apart; consumers should use As to
// recover a typed value from an untyped one instead of relying on reflection.
//
// # Usage
//
//	id := surreal.NewRecordID("person", "tobie")
//	rng := surreal.NewRange(surreal.BoundIncluded{Value: 1}, surreal.BoundExcluded{Value: 10})
//
//	if rid, ok := surreal.As[surreal.RecordID](v); ok {
//	    fmt.Println(rid.TableName())
//	}
//
// All types are plain values. They hold no connections or locks and are safe
// to share between goroutines as long as callers do not mutate them.
package surreal
