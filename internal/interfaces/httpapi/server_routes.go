package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.HandleFunc("POST /v1/sessions", handler.Login)
	mux.Handle("DELETE /v1/sessions/current", RequireAuth(verifier, http.HandlerFunc(handler.Logout)))
	mux.Handle("GET /v1/me", RequireAuth(verifier, http.HandlerFunc(handler.Me)))
	mux.Handle("GET /v1/dashboard", RequireAuth(verifier, http.HandlerFunc(handler.GetDashboard)))
}

func registerRosterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("POST /v1/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PATCH /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeletePlayer)))
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.ListFixtures)))
	mux.Handle("POST /v1/fixtures", RequireAuth(verifier, http.HandlerFunc(handler.CreateFixture)))
	mux.Handle("GET /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.GetFixture)))
	mux.Handle("PATCH /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateFixture)))
	mux.Handle("DELETE /v1/fixtures/{fixtureID}", RequireAuth(verifier, http.HandlerFunc(handler.DeleteFixture)))
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/fixtures/{fixtureID}/live", RequireAuth(verifier, http.HandlerFunc(handler.StartLiveMatch)))
	mux.Handle("GET /v1/live", RequireAuth(verifier, http.HandlerFunc(handler.GetLiveMatch)))
	mux.Handle("PUT /v1/live/score", RequireAuth(verifier, http.HandlerFunc(handler.SetLiveScore)))
	mux.Handle("POST /v1/live/scorers", RequireAuth(verifier, http.HandlerFunc(handler.AddLiveScorer)))
	mux.Handle("POST /v1/live/end", RequireAuth(verifier, http.HandlerFunc(handler.EndLiveMatch)))
}

func registerMotmRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("PUT /v1/fixtures/{fixtureID}/motm/coach", RequireAuth(verifier, http.HandlerFunc(handler.VoteCoachMotm)))
	mux.Handle("PUT /v1/fixtures/{fixtureID}/motm/parent", RequireAuth(verifier, http.HandlerFunc(handler.VoteParentMotm)))
	mux.Handle("GET /v1/results", RequireAuth(verifier, http.HandlerFunc(handler.ListResults)))
	mux.Handle("GET /v1/motm/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetLeaderboard)))
}
