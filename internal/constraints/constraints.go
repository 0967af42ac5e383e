// Package constraints provides type constraints shared by the parsing entry points.
package constraints

// Byteseq is a raw input that can be scanned byte by byte: a string or a byte slice.
type Byteseq interface {
	~string | ~[]byte
}
