package queries

import (
	"errors"

	"nexa/internal/core/domain/services"
	"nexa/internal/pkg/guard"
)

const (
	// ExportFileName is the download name of the order spreadsheet.
	ExportFileName = "pedidos_nexa.csv"

	ExportContentType = "text/csv; charset=utf-8"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery exports the filtered admin list as CSV.
type ExportOrdersQuery struct {
	filter services.OrderFilter

	guard guard.ConstructorGuard
}

// NewExportOrdersQuery takes the same filters as NewListOrdersQuery.
func NewExportOrdersQuery(search, status string) (ExportOrdersQuery, error) {
	filter, err := services.NewOrderFilter(search, status)
	if err != nil {
		return ExportOrdersQuery{}, err
	}

	return ExportOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

func (q ExportOrdersQuery) Filter() services.OrderFilter {
	return q.filter
}

// ExportOrdersQueryResponse is a ready to download file.
type ExportOrdersQueryResponse struct {
	FileName    string
	ContentType string
	Rows        int
	Content     []byte
}
