// Package rfc3986 implements the URI grammar of [RFC 3986 Appendix A].
//
// Rules are generated from rules.abnf as ready to use operators.
//
// [RFC 3986 Appendix A]: https://www.rfc-editor.org/rfc/rfc3986#appendix-A
package rfc3986

//go:generate go tool abnf generate -y ./abnf.yml
