// Package tenant resolves the tenant addressed by the first segment of a
// request path and binds it to the request context.
//
// A request for "/acme/saldo/" belongs to tenant "acme" and is forwarded to the
// application as "/saldo/". Segments listed as exempt ("admin", "healthz")
// bypass resolution entirely and are forwarded unchanged.
//
// # Architecture
//
// The package is built around four pieces:
//
//  1. SplitPath - splits "/acme/rest" into ("acme", "/rest")
//  2. ExemptSet - first segments that are never tenants
//  3. Registry - looks a slug up in the data store
//  4. Middleware - runs the three above per request and manages the context
//
// Resolution ends in one of three states, reported by Middleware.Resolve:
//
//	StateRejected  no segment, invalid or unknown slug; downstream never runs
//	StateExempt    exempt segment; forwarded as is, no tenant in context
//	StateResolved  tenant found; forwarded with the slug stripped
//
// # Usage
//
//	import "github.com/greyhound/greyhound/pkg/tenant"
//
//	mw := tenant.New(registry,
//		tenant.WithExempt("admin", "healthz"),
//		tenant.WithAppendSlash(true),
//		tenant.WithCache(tenant.NewInMemoryCache(0)),
//	)
//	http.ListenAndServe(":8080", mw.Handler(router))
//
//	func saldo(w http.ResponseWriter, r *http.Request) {
//		t, err := tenant.Current(r.Context())
//		if err != nil {
//			// exempt route or called outside a request
//			return
//		}
//		// render links with tenant.PathFor(t, "/saldo/")
//	}
//
// # Tenant lifetime
//
// The middleware gives every request its own tenant slot and empties it when
// the downstream handler returns, including when it panics. Goroutines that
// keep the request context after the response see no tenant at all rather
// than a tenant of another request.
//
// # Error Handling
//
//   - ErrNoTenantSegment: path is "" or "/"
//   - ErrInvalidSlug: first segment cannot be a slug
//   - ErrTenantNotFound: registry has no such tenant
//   - ErrNoTenantInContext: Current called where no tenant was resolved
//
// The first three satisfy IsNotFound and are answered with 404 by
// DefaultErrorHandler. ErrNoTenantInContext is a usage error of downstream
// code and is not produced by the middleware itself.
package tenant
