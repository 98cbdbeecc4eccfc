// Package frame is the tabular boundary of warp: it casts Arrow record
// columns into series collections and assembles output records.
//
// Input records need two logical columns, an identifier column
// (string-convertible) and a value column (float-convertible). Extra
// columns are ignored. Casting is strict: unsupported column types, nulls,
// and unparseable values abort the call with a schema-class error naming
// the offending column, and the identifier where one applies.
//
// The package also carries the CSV adapters used by the warp CLI; CSV
// columns arrive as utf8 and flow through the same casting rules as any
// other string-typed Arrow column.
package frame
