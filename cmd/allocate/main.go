package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"relief-allocation-service/internal/adapters/csvinput"
	"relief-allocation-service/internal/config"
	"relief-allocation-service/internal/platform/obs"
	"relief-allocation-service/internal/report"
	"relief-allocation-service/internal/services"
)

const usage = `usage: allocate [flags] <warehouses.csv> <relief.csv> <routes.csv>

Computes a relief allocation plan and writes it to stdout.

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the CLI body; it returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	config.LoadDotEnv()

	fs := flag.NewFlagSet("allocate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "json", "output format: json or text")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	cfgPath := fs.String("config", config.Get("RELIEF_CONFIG", ""), "optional YAML config file")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this textfile after the run")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 1
	}
	if *format != "json" && *format != "text" {
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	obs.RegisterDefault()

	source := csvinput.NewSource(fs.Arg(0), fs.Arg(1), fs.Arg(2))
	res, err := services.PlanRelief(context.Background(), cfg.PlanRequest(), source)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *format == "text" {
		err = report.WriteText(stdout, res)
	} else {
		err = report.WriteJSON(stdout, res, *pretty)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *metricsFile != "" {
		if err := obs.WriteTextfile(*metricsFile); err != nil {
			log.Printf("metrics: %v", err)
		}
	}
	return 0
}
