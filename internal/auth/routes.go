package auth

import (
	"strings"

	"github.com/stagedoor/stagedoor-api/internal/domain"
)

// Redirect targets used by the gate.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Classification describes what a path requires of the caller.
type Classification struct {
	Public bool
	// Role is empty for routes that only require a valid session.
	Role domain.Role
}

type routeRule struct {
	prefix string
	exact  bool
	class  Classification
}

// routeTable is evaluated top to bottom, first match wins. Public rules
// come first so unauthenticated callers short-circuit before any token
// work; "/stylists" must precede the role-gated "/stylist" prefix.
var routeTable = []routeRule{
	{prefix: "/", exact: true, class: Classification{Public: true}},
	{prefix: "/events", class: Classification{Public: true}},
	{prefix: "/stylists", class: Classification{Public: true}},
	{prefix: "/login", class: Classification{Public: true}},
	{prefix: "/register", class: Classification{Public: true}},
	{prefix: "/auth", class: Classification{Public: true}},
	{prefix: "/admin", class: Classification{Role: domain.RoleAdmin}},
	{prefix: "/stylist", class: Classification{Role: domain.RoleStylist}},
	{prefix: "/dancer", class: Classification{Role: domain.RoleDancer}},
	{prefix: "/booking", class: Classification{Role: domain.RoleDancer}},
}

// Classify resolves the single classification for a path. Anything not
// matched by the table requires authentication with any role.
func Classify(path string) Classification {
	for _, rule := range routeTable {
		if rule.exact {
			if path == rule.prefix {
				return rule.class
			}
			continue
		}
		if strings.HasPrefix(path, rule.prefix) {
			return rule.class
		}
	}
	return Classification{}
}

// Decision is the gate outcome for one request.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Gate decides allow-or-redirect for every incoming request before
// dispatch. It is a pure function of (path, token): no I/O, no state.
type Gate struct {
	codec *TokenCodec
}

// NewGate builds a gate around the session codec.
func NewGate(codec *TokenCodec) *Gate {
	return &Gate{codec: codec}
}

// Decide classifies the path, then checks the session. Public paths allow
// unconditionally; a missing or undecodable token redirects to the login
// page; a role mismatch on a gated prefix redirects home; everything else
// with a valid session is allowed.
func (g *Gate) Decide(path, token string) Decision {
	class := Classify(path)
	if class.Public {
		return Decision{Allow: true}
	}

	if token == "" {
		return Decision{RedirectTo: LoginPath}
	}
	claims, err := g.codec.Decode(token)
	if err != nil {
		return Decision{RedirectTo: LoginPath}
	}

	if class.Role != "" && claims.Role != class.Role {
		return Decision{RedirectTo: HomePath}
	}
	return Decision{Allow: true}
}
