package auth

// OAuth scopes understood by the workout API.
const (
	ScopeWorkoutsRead  = "workouts:read"
	ScopeWorkoutsWrite = "workouts:write"
)
