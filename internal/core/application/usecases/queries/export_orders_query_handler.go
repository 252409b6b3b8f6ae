package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"nexa/internal/core/ports"
)

var exportHeader = []string{"Data", "Nome", "WhatsApp", "Pacote", "Tamanho", "Cidade", "Status"}

// ExportOrdersQueryHandler writes one CSV row per matching order, newest first:
// creation date as dd/mm/yyyy in the shop time zone, name, WhatsApp, package, size,
// city and status label.
type ExportOrdersQueryHandler struct {
	orders   ports.OrderStore
	location *time.Location
}

func NewExportOrdersQueryHandler(orders ports.OrderStore, location *time.Location) ExportOrdersQueryHandler {
	if location == nil {
		location = time.UTC
	}
	return ExportOrdersQueryHandler{orders: orders, location: location}
}

// Handle builds the file.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) (ExportOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	stored, err := h.orders.List(ctx)
	if err != nil {
		return ExportOrdersQueryResponse{}, err
	}
	selected := query.Filter().Apply(stored)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err = w.Write(exportHeader); err != nil {
		return ExportOrdersQueryResponse{}, err
	}
	for _, o := range selected {
		if err = w.Write([]string{
			o.CreatedAt().In(h.location).Format("02/01/2006"),
			o.Contact().FullName,
			o.Contact().WhatsApp,
			o.PackageName(),
			o.Size(),
			o.Address().City,
			o.Status().Label(),
		}); err != nil {
			return ExportOrdersQueryResponse{}, err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return ExportOrdersQueryResponse{}, err
	}

	return ExportOrdersQueryResponse{
		FileName:    ExportFileName,
		ContentType: ExportContentType,
		Rows:        len(selected),
		Content:     buf.Bytes(),
	}, nil
}
