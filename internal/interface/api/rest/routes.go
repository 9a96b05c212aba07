package rest

const (
	// user
	RouteUser      = "/user"
	RouteUserLogin = RouteUser + "/Login"
	RouteUserList  = RouteUser + "/List"
	RouteUserByID  = RouteUser + "/:id"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
