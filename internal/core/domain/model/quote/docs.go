// Package quote contains the Quote aggregate: the priced offer presented to
// the shipper for one request, with an immutable line-item breakdown and a
// Pending -> Accepted/Declined/Expired decision lifecycle.
package quote
