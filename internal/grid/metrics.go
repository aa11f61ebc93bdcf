package grid

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciliation outcomes used as metric labels.
const (
	outcomeUnchanged = "unchanged"
	outcomeGrown     = "grown"
	outcomeRejected  = "rejected"
	outcomeRebuilt   = "rebuilt"
)

var (
	// Reconciliations tracks Grid updates by outcome.
	Reconciliations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagrid_reconciliations_total",
			Help: "Total number of grid row reconciliations",
		},
		[]string{"outcome"}, // "unchanged", "grown", "rejected", "rebuilt"
	)

	// RowsAppended tracks identities appended by reconciliation.
	RowsAppended = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "datagrid_rows_appended_total",
			Help: "Total number of row identities appended to grid row orders",
		},
	)

	// PageNavigations tracks navigation requests by kind.
	PageNavigations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagrid_page_navigations_total",
			Help: "Total number of grid page navigation requests",
		},
		[]string{"kind"}, // "next", "previous", "jump", "button"
	)
)
