// Package syntax is the host-neutral syntax tree consumed by jwslint rules.
//
// Parsers translate their own trees into syntax.File: typed nodes tagged
// with a Kind, role-indexed sub-tokens for the constructs whitespace rules
// inspect, and tokens carrying exact 1-based line/column ranges.
package syntax
