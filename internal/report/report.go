// Package report renders allocation results for people and programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"relief-allocation-service/internal/api/dto"
	"relief-allocation-service/internal/domain"
	"relief-allocation-service/internal/services"
	"strings"
	"text/tabwriter"
)

// WriteJSON writes the reference JSON document of res.
func WriteJSON(w io.Writer, res *domain.Result, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(dto.NewPlanResponse(res, false)); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}

// WriteText writes a table of shipments, the status of every request and the
// per-resource coverage.
func WriteText(w io.Writer, res *domain.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "WAREHOUSE\tFROM\tAREA\tTO\tRESOURCE\tQTY\tKM\tPATH")
	for _, a := range res.Allocations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%.2f\t%s\n",
			a.Warehouse.Warehouse, a.Warehouse.City, a.Request.Area, a.Request.City,
			a.Request.Resource, a.Quantity, a.Distance, strings.Join(res.PathNames(a), " > "))
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "AREA\tCITY\tRESOURCE\tURGENCY\tREQUESTED\tALLOCATED\tSTATUS")
	for _, o := range res.Requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			o.Request.Area, o.Request.City, o.Request.Resource, o.Request.Urgency,
			o.Request.Requested, o.Allocated, o.Status)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "RESOURCE\tREQUESTED\tALLOCATED\tCOVERAGE")
	for _, agg := range res.Summary.Resources {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d%%\n",
			agg.Resource, agg.Requested, agg.Allocated, services.CoveragePct(agg.Allocated, agg.Requested))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d%%\n", res.Summary.TotalRequested, res.Summary.TotalAllocated, res.Summary.CoveragePct)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}
