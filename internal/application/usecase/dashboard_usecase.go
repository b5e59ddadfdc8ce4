package usecase

import (
	"context"
	"time"

	"github.com/fromm-latam/panel-admin-api/internal/application/dto"
	"github.com/fromm-latam/panel-admin-api/internal/domain"
	"github.com/fromm-latam/panel-admin-api/internal/domain/repository"
)

// DashboardUseCase resúmenes del inicio del panel.
type DashboardUseCase struct {
	dashboard repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboard repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboard: dashboard}
}

// Counters números de cabecera: totales, pendientes y enviadas.
func (uc *DashboardUseCase) Counters(ctx context.Context, countryCode string) (*dto.CountersResponse, error) {
	c, err := uc.dashboard.GetCounters(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	return &dto.CountersResponse{
		TotalCount:      c.TotalCount,
		PendingInvoices: c.PendingInvoices,
		SendInvoices:    c.SendInvoices,
	}, nil
}

// AmountsByDate agregados diarios del rango para el gráfico, más los totales.
func (uc *DashboardUseCase) AmountsByDate(ctx context.Context, countryCode string, start, end time.Time) (*dto.AmountsByDateResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	rows, total, amount, err := uc.dashboard.GetDailyAmounts(ctx, countryCode, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DailyAmountRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyAmountRow{
			CreatedAt:      r.CreatedAt,
			TotalCount:     r.TotalCount,
			TotalAmountSum: r.TotalAmountSum,
		})
	}
	return &dto.AmountsByDateResponse{
		Invoices:            out,
		CotizacionesTotales: total,
		MontoTotal:          amount,
	}, nil
}

// SoldCount cotizaciones vendidas en el rango; la respuesta HTTP es el número pelado.
func (uc *DashboardUseCase) SoldCount(ctx context.Context, countryCode string, start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, domain.ErrInvalidInput
	}
	return uc.dashboard.GetSoldCount(ctx, countryCode, start, end)
}
