// layoutd exposes the dungeon generator over HTTP as a small JSON API.
// Build:
//
//	go build -o layoutd ./cmd/layoutd
//
// Usage:
//
//	./layoutd [--addr :8080]
//
// Endpoints:
//
//	GET /api/health        liveness probe
//	GET /api/layout        generated layout as JSON, parameters via query
//	GET /api/layout.txt    same layout rendered as ASCII
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	flag.Parse()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)
		r.Get("/layout", handleLayout)
		r.Get("/layout.txt", handleLayoutText)
	})

	log.Printf("layoutd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}
