package domain

// RoleDistribution is the per-role user count in the admin stats view.
type RoleDistribution struct {
	Admin    int `json:"admin"`
	Manager  int `json:"manager"`
	Employee int `json:"employee"`
}

// DashboardStats is the role-scoped aggregate returned by the server.
// For employees only the task counters are populated; the user counters
// and role distribution stay zero.
type DashboardStats struct {
	TotalTasks       int              `json:"totalTasks"`
	Pending          int              `json:"pending"`
	InProgress       int              `json:"inProgress"`
	Review           int              `json:"review"`
	Completed        int              `json:"completed"`
	Overdue          int              `json:"overdue"`
	TotalUsers       int              `json:"totalUsers,omitempty"`
	ActiveUsers      int              `json:"activeUsers,omitempty"`
	InactiveUsers    int              `json:"inactiveUsers,omitempty"`
	RoleDistribution RoleDistribution `json:"roleDistribution,omitempty"`
}

// PerformanceEntry is one employee's completion record in the
// admin/manager performance view.
type PerformanceEntry struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	IsActive       bool    `json:"isActive"`
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	CompletionRate float64 `json:"completionRate"`
}
