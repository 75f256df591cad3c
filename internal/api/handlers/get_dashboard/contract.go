package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reports/models"
)

type ReportService interface {
	Dashboard(ctx context.Context, identity domain.Identity) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
