package discount

import (
	"context"
	"log/slog"

	"catalog_demo/internal/domain/entity"
	"catalog_demo/internal/domain/value"
	"catalog_demo/pkg/contextx"
	"catalog_demo/pkg/logx"
)

// NoDiscountsMessage is printed when the very first page is empty.
const NoDiscountsMessage = "No discounts found."

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var discountTypes = []value.CatalogObjectType{value.CatalogObjectTypeDiscount}

//go:generate moq -rm -out catalog_client_mock.gen.go . CatalogClient:CatalogClientMock
type CatalogClient interface {
	ListCatalog(
		ctx context.Context,
		cursor string,
		types []value.CatalogObjectType,
		catalogVersion *int64,
	) (entity.CatalogPage, error)
}

// Logger receives the human readable output of a run.
//
//go:generate moq -rm -out logger_mock.gen.go . Logger:LoggerMock
type Logger interface {
	Info(message string)
	Error(message string)
}

type Service struct {
	client         CatalogClient
	out            Logger
	catalogVersion *int64
}

func NewService(client CatalogClient, out Logger) *Service {
	return &Service{
		client: client,
		out:    out,
	}
}

// WithCatalogVersion pins the listing to a catalog version instead of the
// latest one.
func (s *Service) WithCatalogVersion(version int64) *Service {
	s.catalogVersion = &version
	return s
}

// ListAll pages through every discount in the catalog and prints one line
// per discount. Pages are requested one at a time until the API stops
// returning a cursor.
//
// In-band API errors and request failures both end the run. They are
// printed through the Logger and reported in Stats.Outcome, never returned.
func (s *Service) ListAll(ctx context.Context) Stats {
	var (
		cursor string
		stats  Stats
	)

	for {
		firstPage := cursor == ""

		page, err := s.client.ListCatalog(ctx, cursor, discountTypes, s.catalogVersion)
		if err != nil {
			logger(ctx).Debug("catalog request failed",
				slog.String(logx.FieldCursor, cursor),
				logx.Error(err),
			)
			s.out.Error(err.Error())

			return stats.finish(OutcomeTransportFault)
		}

		stats.Pages++

		logger(ctx).Debug("catalog page received",
			slog.Int(logx.FieldPage, stats.Pages),
			slog.Int(logx.FieldObjects, len(page.Objects)),
			slog.Bool(logx.FieldHasNext, page.HasNext()),
		)

		if s.checkAndLogErrors(page) {
			return stats.finish(OutcomeServiceErrors)
		}

		if len(page.Objects) == 0 {
			// Empty later pages are skipped, the cursor still moves on.
			if firstPage {
				s.out.Info(NoDiscountsMessage)
				return stats.finish(OutcomeEmpty)
			}
		} else {
			for _, object := range page.Objects {
				line, ok := FormatLine(object)
				if !ok {
					logger(ctx).Warn("catalog object has no discount data",
						slog.String(logx.FieldObjectID, object.ID),
						logx.Stringer(logx.FieldObjectType, object.Type),
					)

					continue
				}

				s.out.Info(line)
				stats.Discounts++
			}
		}

		cursor = page.Cursor
		if cursor == "" {
			return stats.finish(OutcomeCompleted)
		}
	}
}

// checkAndLogErrors prints every error entry of page and reports whether
// there were any.
func (s *Service) checkAndLogErrors(page entity.CatalogPage) bool {
	for _, apiErr := range page.Errors {
		s.out.Error(apiErr.String())
	}

	return page.HasErrors()
}
