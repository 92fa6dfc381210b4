// Package dataprocessing implements the weekly shipment sheet pipeline.
// It consolidates row filtering, header classification, and column
// consolidation into a cohesive package covering the full transformation
// from an ingested table to the cleaned output schema.
//
// # Architecture
//
// The package is organized into three stages plus an orchestrator:
//
// 1. FilterStatus: keeps only firm/forecast order rows
// 2. ClassifyHeaders: normalizes date-like headers into YYYYWW week keys
// 3. ConsolidateWeeks: merges columns sharing a week key by summation
//
// # Usage
//
// Full pipeline run:
//
//	out := dataprocessing.Process(t, dataprocessing.DefaultOptions())
//
// Individual stages compose the same way the pipeline does:
//
//	t = dataprocessing.FilterStatus(t)
//	labels, isWeek := dataprocessing.ClassifyHeaders(t.Labels())
//
// # Data Flow
//
//	Spreadsheet → reader → table.Table → Process → table.Table → exporter
//
// The pipeline is synchronous and stateless across invocations: each call
// operates on its own table value, and any failure aborts the whole run
// with no partial output.
package dataprocessing
