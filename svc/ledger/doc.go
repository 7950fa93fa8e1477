// Package ledger stores per-tenant operations and computes balances.
//
// Views never receive a tenant id from the URL; they take it from the tenant
// bound to the request context, so a balance can only be read for the tenant
// addressed by the path prefix.
package ledger
