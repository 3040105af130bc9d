package upload_image

import (
	"context"
	"io"

	"github.com/ateliernature/animations-booking/internal/integrations/mediahost"
)

type MediaClient interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*mediahost.UploadResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
