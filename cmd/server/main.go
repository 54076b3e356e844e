package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"relief-allocation-service/internal/adapters/csvinput"
	"relief-allocation-service/internal/adapters/repositories"
	"relief-allocation-service/internal/api"
	"relief-allocation-service/internal/config"
	"relief-allocation-service/internal/platform/db"
	"relief-allocation-service/internal/platform/obs"
	"relief-allocation-service/internal/ports"
	"time"
)

// main is the application composition root.
// It picks the input source (database or CSV files) and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	cfgPath := flag.String("config", config.Get("RELIEF_CONFIG", ""), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	obs.RegisterDefault()

	source, conn, err := openSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if conn != nil {
		defer conn.Close()
	}

	router := api.NewRouter(source, cfg.PlanRequest())

	log.Printf("Server listening addr=:%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openSource reads inputs from the database when a DSN is configured,
// otherwise from the configured CSV files on every run.
func openSource(cfg config.Config) (ports.InputSource, *sql.DB, error) {
	if cfg.DB.DSN == "" {
		log.Printf(
			"input source=csv warehouses=%s relief=%s routes=%s",
			cfg.Server.WarehousesPath, cfg.Server.ReliefPath, cfg.Server.RoutesPath,
		)
		return csvinput.NewSource(cfg.Server.WarehousesPath, cfg.Server.ReliefPath, cfg.Server.RoutesPath), nil, nil
	}

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("input source=db driver=%s", cfg.DB.Driver)
	return repositories.NewSQLInputRepository(conn), conn, nil
}
