package domain

// Route identifies a screen the client shell can show and who may see it.
// Fields are ordered to minimize memory padding.
type Route struct {
	Name   string
	Roles  []Role // Empty = any authenticated role
	Public bool   // Reachable without a session
}

// The routes exposed by the client shell.
var (
	RouteLogin     = Route{Name: "login", Public: true}
	RouteRegister  = Route{Name: "register", Public: true}
	RouteDashboard = Route{Name: "dashboard"}
	RouteTasks     = Route{Name: "tasks"}
	RouteUsers     = Route{Name: "users", Roles: []Role{RoleAdmin}}
)

// RouteByName resolves a route name. Unknown names fall back to the
// dashboard, the default authenticated landing route.
func RouteByName(name string) Route {
	switch name {
	case RouteLogin.Name:
		return RouteLogin
	case RouteRegister.Name:
		return RouteRegister
	case RouteTasks.Name:
		return RouteTasks
	case RouteUsers.Name:
		return RouteUsers
	default:
		return RouteDashboard
	}
}

// Decision is the route guard's verdict for one navigation attempt.
type Decision int

const (
	// DecisionPending means the session is still restoring; show a
	// neutral waiting view and make no routing choice yet.
	DecisionPending Decision = iota
	// DecisionAllow renders the requested route.
	DecisionAllow
	// DecisionLogin forces navigation to the login route.
	DecisionLogin
	// DecisionDashboard forces navigation to the landing route, either
	// because the role is not permitted or because an authenticated
	// identity hit a public route.
	DecisionDashboard
)

// Decide evaluates one navigation attempt. It is a pure function of the
// session state and the requested route; it is recomputed on every
// navigation and every session change and holds no state of its own.
func Decide(state SessionState, route Route) Decision {
	if state.Loading {
		return DecisionPending
	}
	if state.User == nil {
		if route.Public {
			return DecisionAllow
		}
		return DecisionLogin
	}
	// Authenticated identities are bounced away from public routes.
	if route.Public {
		return DecisionDashboard
	}
	if len(route.Roles) == 0 {
		return DecisionAllow
	}
	for _, r := range route.Roles {
		if state.User.Role == r {
			return DecisionAllow
		}
	}
	return DecisionDashboard
}
