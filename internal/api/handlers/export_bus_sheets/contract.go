package export_bus_sheets

import (
	"context"

	exportBusSheets "github.com/ateliernature/animations-booking/internal/usecase/export_bus_sheets"
)

type ExportBusSheetsUseCase interface {
	Execute(ctx context.Context, req *exportBusSheets.Request) (*exportBusSheets.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
