package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CountersResponse números de la cabecera del listado de cotizaciones.
type CountersResponse struct {
	TotalCount      int64 `json:"totalCount"`
	PendingInvoices int64 `json:"pendingInvoices"`
	SendInvoices    int64 `json:"sendInvoices"`
}

// DailyAmountRow agregado por día para los gráficos del inicio.
type DailyAmountRow struct {
	CreatedAt      time.Time       `json:"createdAt"`
	TotalCount     int64           `json:"totalCount"`
	TotalAmountSum decimal.Decimal `json:"totalAmountSum"`
}

// AmountsByDateResponse resumen del rango de fechas elegido.
type AmountsByDateResponse struct {
	Invoices            []DailyAmountRow `json:"invoices"`
	CotizacionesTotales int64            `json:"cotizacionesTotales"`
	MontoTotal          decimal.Decimal  `json:"montoTotal"`
}
