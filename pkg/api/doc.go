// Package api exposes permutation lookups over HTTP.
//
// # Endpoints
//
//	GET /healthz
//	GET /version
//	GET /v1/factorial/{n}
//	GET /v1/alphabets/{alphabet}/permutations?limit=k
//	GET /v1/alphabets/{alphabet}/permutations/{rank}?method=direct|enumeration
//	GET /v1/alphabets/{alphabet}/ranks/{permutation}
//
// Alphabets and permutations are path segments; non-ASCII symbols must be
// percent-encoded. Every response is JSON. Errors use the shape
//
//	{"code": "RANK_OUT_OF_RANGE", "message": "rank 7 is outside [1, 6]"}
//
// with the HTTP status derived from the code (see errors.HTTPStatus).
//
// Direct lookups never build a tree and work for alphabets up to 20 symbols.
// Enumeration is limited to small alphabets because its response (or its
// cost, for enumeration lookups) grows factorially.
package api
