package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"relief-allocation-service/internal/adapters/csvinput"
	"relief-allocation-service/internal/adapters/repositories"
	"relief-allocation-service/internal/config"
	"relief-allocation-service/internal/platform/db"
	"relief-allocation-service/internal/services"
	"strings"
)

// dbtool creates the input tables and loads them from CSV files.
//
//	dbtool [-config file.yaml] [warehouses.csv relief.csv routes.csv]
//
// Without arguments the CSV paths come from the configuration.
func main() {
	config.LoadDotEnv()
	cfgPath := flag.String("config", config.Get("RELIEF_CONFIG", ""), "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if strings.TrimSpace(cfg.DB.DSN) == "" {
		log.Fatal("DATABASE_URL or DB_PATH is required")
	}

	paths := []string{cfg.Server.WarehousesPath, cfg.Server.ReliefPath, cfg.Server.RoutesPath}
	switch flag.NArg() {
	case 0:
	case 3:
		paths = flag.Args()
	default:
		log.Fatal("expected either no arguments or <warehouses.csv> <relief.csv> <routes.csv>")
	}

	conn, err := db.Open(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	source := csvinput.NewSource(paths[0], paths[1], paths[2])
	if err := initAndSeed(context.Background(), conn, repositories.Dialect(cfg.DB.Driver), source); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, source *csvinput.Source) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	in, err := services.LoadInputs(ctx, source)
	if err != nil {
		return fmt.Errorf("read csv inputs: %w", err)
	}

	log.Println("Seeding database...")
	if err := repositories.Seed(ctx, conn, dialect, in); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete. warehouses=%d relief=%d routes=%d", len(in.Warehouses), len(in.Relief), len(in.Routes))

	return nil
}
