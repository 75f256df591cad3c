package export_report

import (
	"context"
	"io"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reports"
)

type ReportService interface {
	Export(ctx context.Context, identity domain.Identity, kind reports.Kind, w io.Writer) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
