// Package ir provides the intermediate representation (IR) for parsed
// input documents.
//
// # Overview
//
// The IR is the generic value tree sitting between the input parsers
// (package parse) and the converter (package jsonkdl). Whether the
// source text was JSON or YAML, it is represented as the same ir.Node
// tree and converted identically from there.
//
// The IR works as a recursive tagged union structure, where values are
// placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there will always be the same number of fields as
// values. Key insertion order is preserved; a duplicate key replaces
// the earlier value in place (last write wins).
//
// # Numbers
//
// Number values keep the exact source literal under Number. Parsed
// views are placed under:
//
//   - Int64: if the literal fits a 64-bit signed integer
//   - Float64: if it fits a 64-bit IEEE float instead
//
// Both views may be absent (literals beyond either range, such as a
// 300-digit integer or an exponent like 1e10000000). Only the literal
// text is authoritative; consumers re-emitting numbers must use Number,
// never a parsed view.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromNumber("0.30000000000000004")
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromInt(2),
//	})
//
// # Thread Safety
//
// Node structures are not thread-safe. The conversion pipeline is
// single-owner and single-pass, so no synchronization is performed.
//
// # Related Packages
//
//   - github.com/joshprk/jsonkdl/parse - Parses input text into IR nodes
//   - github.com/joshprk/jsonkdl - Converts IR trees to KDL documents
package ir
