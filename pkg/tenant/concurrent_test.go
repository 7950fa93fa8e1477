package tenant_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greyhound/greyhound/pkg/tenant"
)

func TestMiddleware_ConcurrentRequestsDoNotLeak(t *testing.T) {
	t.Parallel()

	const tenants = 8
	const perTenant = 50

	reg := newMapRegistry()
	for i := range tenants {
		tt := createTestTenant(fmt.Sprintf("t%d", i))
		reg.tenants[tt.Slug] = tt
	}

	h := tenant.New(reg,
		tenant.WithExempt("admin"),
		tenant.WithCache(tenant.NewInMemoryCache(tenants)),
	).Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, tenant.SlugFromContext(r.Context()))
	}))

	var wg sync.WaitGroup
	errs := make(chan string, tenants*perTenant*2)

	for i := range tenants {
		slug := fmt.Sprintf("t%d", i)
		for range perTenant {
			wg.Add(2)
			go func() {
				defer wg.Done()
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/"+slug+"/", nil))
				if got := w.Body.String(); got != slug {
					errs <- fmt.Sprintf("want %q, got %q", slug, got)
				}
			}()
			go func() {
				defer wg.Done()
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/", nil))
				if got := w.Body.String(); got != "" {
					errs <- fmt.Sprintf("exempt request saw tenant %q", got)
				}
			}()
		}
	}

	wg.Wait()
	close(errs)

	for e := range errs {
		assert.Fail(t, e)
	}
}
