// Package token tokenizes KDL text.
//
// [Tokenize] turns bytes into a flat token sequence with byte-offset
// positions. Both KDL specification revisions lex the same way here;
// revision differences (which keywords exist bare, which need the #
// prefix) are the parser's concern.
package token
