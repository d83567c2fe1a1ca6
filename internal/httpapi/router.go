package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the route table:
//
//	GET    /healthz
//	GET    /metrics
//	PUT    /v1/kv/{key}
//	GET    /v1/kv/{key}
//	DELETE /v1/kv/{key}
//	GET    /v1/products
//	GET    /v1/products/{id}
//
// Every /v1 route passes the rate limiter first.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	router.Use(
		s.requestID,
		s.logging,
		s.recovery,
		s.observe,
	)

	router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	router.Handle("/metrics", s.deps.Metrics.Handler()).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Use(s.rateLimit)
	v1.HandleFunc("/kv/{key}", s.putValue).Methods(http.MethodPut)
	v1.HandleFunc("/kv/{key}", s.getValue).Methods(http.MethodGet)
	v1.HandleFunc("/kv/{key}", s.deleteValue).Methods(http.MethodDelete)
	v1.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	v1.HandleFunc("/products/{id:[0-9]+}", s.getProduct).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	return router
}
