// Package ni builds and verifies content-addressed names: "ni:" and "nih:"
// URIs (RFC 6920) and their ".well-known" HTTP form (RFC 5785).
//
// A name template such as "ni://example.com/sha-256;?ct=text/plain" is
// completed with the digest of a buffer by MakeName, and CheckName tells
// whether a name matches a buffer. For "nih:" names CheckName also tells a
// wrong check digit apart from a wrong digest.
//
// See the [github.com/tarantool/go-ni/digest] package for the incremental
// digest session and [github.com/tarantool/go-ni/binform] for the binary form.
package ni
