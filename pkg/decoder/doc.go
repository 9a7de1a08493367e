/*
Package decoder implements the host-side payload parser.

A Decoder turns the raw bytes of a cell output into a domain.Value according to its
type tag: JSON-bearing tags are parsed as JSON, the HTML tag is wrapped verbatim, and any
other tag is rejected with *domain.UnsupportedTypeError.
*/
package decoder
