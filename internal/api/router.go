package api

import (
	"net/http"
	"relief-allocation-service/internal/api/handlers"
	"relief-allocation-service/internal/platform/obs"
	"relief-allocation-service/internal/ports"
	"relief-allocation-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(source ports.InputSource, plan services.PlanReliefRequest) http.Handler {
	mux := http.NewServeMux()

	allocHandler := handlers.NewAllocationHandler(source, plan)

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/admin/allocate", allocHandler.Allocate)
	mux.HandleFunc("/public/allocations", allocHandler.Latest)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
