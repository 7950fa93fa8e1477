// Package web holds the tenant-scoped views of greyhound.
//
// Views are routed on the path left after the tenant middleware stripped the
// slug, so "/acme/saldo/" is served by the "/saldo/" route with tenant acme
// bound to the request context. Links back into the tenant are built with
// tenant.PathFor. The admin view lives outside any tenant and is only
// reachable while "admin" is an exempt segment.
package web
