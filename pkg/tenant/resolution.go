package tenant

// State is the terminal state of resolving one request path.
type State int

const (
	// StateRejected means the request must be answered with an error and
	// never reach downstream handlers.
	StateRejected State = iota
	// StateExempt means the first segment is exempt; the request is forwarded
	// unchanged and without a tenant.
	StateExempt
	// StateResolved means a tenant was found; the request is forwarded with
	// the tenant segment stripped.
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateExempt:
		return "exempt"
	case StateResolved:
		return "resolved"
	default:
		return "rejected"
	}
}

// Resolution is the outcome of resolving a path.
type Resolution struct {
	State State
	// Slug is the first path segment, empty when the path has none.
	Slug string
	// Rest is the path to forward downstream: the remainder after the slug
	// when resolved, the original path when exempt.
	Rest string
	// Tenant is set only when State is StateResolved.
	Tenant *Tenant
	// Err is set only when State is StateRejected.
	Err error
}
