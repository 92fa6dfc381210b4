package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	filesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weekcast_files_processed_total",
		Help: "Number of spreadsheet files processed, by format.",
	}, []string{"format"})

	filesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weekcast_files_failed_total",
		Help: "Number of spreadsheet files that failed processing, by reason.",
	}, []string{"reason"})

	columnsConsolidated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "weekcast_columns_consolidated_total",
		Help: "Number of input columns merged away during week consolidation.",
	})
)
