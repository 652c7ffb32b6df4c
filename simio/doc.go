// Package simio is the I/O shim around the driver: it parses the
// "i1:v1 i2:v2" input-spec format into dense or sparse buffers and writes
// run outputs as tab-delimited tables or raw value streams.
//
// The parser is deliberately tolerant: a token that does not parse as
// index:value is skipped in silence, which keeps hand-edited input files
// usable.
package simio
