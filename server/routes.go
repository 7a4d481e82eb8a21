package server

const (
	RouteHealth = "/health"
	RouteSignup = "/auth/signup"
	RouteLogin  = "/auth/login"
	RouteMe     = "/auth/me"
)

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteHealth, ChainMiddleware(s.HealthHandler(), s.APIMiddleware()...))

	// Browsers preflight every cross-origin JSON request. The routes above
	// are method-qualified, so OPTIONS needs its own catch-all or the mux
	// answers 405 before CorsMiddleware sees the request.
	s.RegisterRouteHandler("OPTIONS /", ChainMiddleware(s.PreflightHandler(), s.APIMiddleware()...))

	s.RegisterRouteHandler("POST "+RouteSignup, ChainMiddleware(s.SignupHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))

	// Protected routes. RequireAuth is the single authorization gate;
	// handlers behind it read the identity from the request context.
	s.RegisterRouteHandler("GET "+RouteMe, ChainMiddleware(s.MeHandler(), s.ProtectedAPIMiddleware()...))
}
