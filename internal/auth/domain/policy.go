package domain

import "strings"

// Decision is the outcome of an access policy evaluation.
type Decision int

const (
	// DecisionAllow hands the request to the business operation.
	DecisionAllow Decision = iota
	// DecisionUnauthenticated denies the request for lack of a principal (401).
	DecisionUnauthenticated
	// DecisionForbidden denies the request for lack of the required role (403).
	DecisionForbidden
)

// String returns the lowercase label used in logs and metrics.
func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Rule is one entry of the access policy table.
//
// Pattern is either an exact path, a prefix ending in "*", or the lone "*"
// which matches everything. Method empty means any method. Public rules allow
// anonymous access; otherwise a principal is required, and RequiredRole (when
// set) must match the principal's role exactly.
type Rule struct {
	Method       string
	Pattern      string
	Public       bool
	RequiredRole Role
}

// matches reports whether the rule covers the given method and path.
func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if r.Pattern == "*" {
		return true
	}
	if strings.HasSuffix(r.Pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(r.Pattern, "*"))
	}
	return path == r.Pattern
}

// Policy is an ordered, immutable route access table built at startup.
// Evaluation is first match wins, so operation-level overrides (e.g. an
// admin-only mutation under an otherwise public prefix) must appear before
// the coarse prefix rules.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from an ordered rule list.
func NewPolicy(rules []Rule) *Policy {
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Policy{rules: copied}
}

// Decide evaluates the table for a request. It is a pure function of the
// method, path, principal and the rule table: identical inputs always yield
// identical decisions. A nil principal means anonymous.
func (p *Policy) Decide(method, path string, principal *Principal) Decision {
	for _, rule := range p.rules {
		if !rule.matches(method, path) {
			continue
		}
		if rule.Public {
			return DecisionAllow
		}
		if principal == nil {
			return DecisionUnauthenticated
		}
		if rule.RequiredRole != "" && principal.Role != rule.RequiredRole {
			return DecisionForbidden
		}
		return DecisionAllow
	}

	// No rule matched: require authentication. The default table ends with a
	// catch-all, so this only fires for custom tables without one.
	if principal == nil {
		return DecisionUnauthenticated
	}
	return DecisionAllow
}

// DefaultPolicy returns the storefront access table.
//
// Admin overrides come first, then the public allowlist (registration, login,
// category and product browsing, order placement), then a catch-all that
// requires an authenticated principal.
func DefaultPolicy() *Policy {
	return NewPolicy([]Rule{
		// Authenticated self-service, listed before the admin user listing.
		{Method: "GET", Pattern: "/users/me"},

		// Admin-only operations.
		{Method: "GET", Pattern: "/users", RequiredRole: RoleAdmin},
		{Method: "POST", Pattern: "/categories", RequiredRole: RoleAdmin},
		{Method: "PUT", Pattern: "/categories/*", RequiredRole: RoleAdmin},
		{Method: "DELETE", Pattern: "/categories/*", RequiredRole: RoleAdmin},
		{Method: "POST", Pattern: "/products", RequiredRole: RoleAdmin},
		{Method: "PUT", Pattern: "/products/*", RequiredRole: RoleAdmin},
		{Method: "DELETE", Pattern: "/products/*", RequiredRole: RoleAdmin},
		{Method: "PUT", Pattern: "/orders/items/*", RequiredRole: RoleAdmin},
		{Method: "GET", Pattern: "/orders/items", RequiredRole: RoleAdmin},

		// Public storefront surface.
		{Pattern: "/auth/*", Public: true},
		{Method: "GET", Pattern: "/categories*", Public: true},
		{Method: "GET", Pattern: "/products*", Public: true},
		{Method: "POST", Pattern: "/orders", Public: true},

		// Everything else needs a valid principal.
		{Pattern: "*"},
	})
}
