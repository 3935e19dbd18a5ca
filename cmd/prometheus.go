package main

import (
	"fuelprice/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
)

func (a *App) InitMetrics() {
	a.Metrics = structs.NewMetrics(prometheus.DefaultRegisterer)
}
