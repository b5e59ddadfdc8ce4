package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceCounters números de la cabecera del listado de cotizaciones.
type InvoiceCounters struct {
	TotalCount      int64
	PendingInvoices int64
	SendInvoices    int64
}

// DailyAmount agregado por día para el gráfico del inicio.
type DailyAmount struct {
	CreatedAt      time.Time
	TotalCount     int64
	TotalAmountSum decimal.Decimal
}

// DashboardRepository consultas de solo lectura para los resúmenes del panel.
type DashboardRepository interface {
	GetCounters(ctx context.Context, countryCode string) (InvoiceCounters, error)
	// GetDailyAmounts cotizaciones por día en el rango, más totales del rango.
	GetDailyAmounts(ctx context.Context, countryCode string, start, end time.Time) ([]DailyAmount, int64, decimal.Decimal, error)
	// GetSoldCount cotizaciones VENDIDO en el rango.
	GetSoldCount(ctx context.Context, countryCode string, start, end time.Time) (int64, error)
}
