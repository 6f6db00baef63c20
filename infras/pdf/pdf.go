package pdf

//go:generate go run go.uber.org/mock/mockgen -source=./pdf.go -destination=./mocks/pdf_mock.go -package=mocks

import (
	"context"
	"strings"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/rs/zerolog/log"
)

// Renderer converts HTML content into a binary PDF document. Rendering is
// synchronous and is not retried; a failure is surfaced to the caller as a
// user-visible error.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

type rendererImpl struct {
	otel otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Renderer {
	if cfg.External.Pdf.BinPath != "" {
		wkhtmltopdf.SetPath(cfg.External.Pdf.BinPath)
	}

	return &rendererImpl{
		otel: otl,
	}
}

func (r *rendererImpl) Render(ctx context.Context, html string) (doc []byte, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelPdfScopeName, constant.OtelPdfScopeName+".Render")
	defer scope.End()
	defer scope.TraceIfError(err)

	generator, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize PDF generator")

		return nil, failure.BadGateway("document renderer unavailable") //nolint:wrapcheck
	}

	generator.AddPage(wkhtmltopdf.NewPageReader(strings.NewReader(html)))

	if err = generator.CreateContext(ctx); err != nil {
		log.Error().Err(err).Msg("failed to render PDF document")

		return nil, failure.BadGateway("failed to render document") //nolint:wrapcheck
	}

	return generator.Bytes(), nil
}
