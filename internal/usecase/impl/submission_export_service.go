package impl

import (
	"bytes"
	"context"
	"fmt"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/tealeg/xlsx"
)

type submissionExportService struct {
	bulkOrders usecase.BulkOrderUsecase
	newsletter usecase.NewsletterUsecase
	now        func() time.Time
}

// NewSubmissionExportService creates the spreadsheet export service
func NewSubmissionExportService(bulkOrders usecase.BulkOrderUsecase, newsletter usecase.NewsletterUsecase) usecase.SubmissionExportUsecase {
	return &submissionExportService{
		bulkOrders: bulkOrders,
		newsletter: newsletter,
		now:        time.Now,
	}
}

// ExportBulkOrders renders the listed bulk orders, one row per order
func (srv *submissionExportService) ExportBulkOrders(ctx context.Context) (*usecase.Spreadsheet, error) {
	orders, err := srv.bulkOrders.List(ctx)
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Name", "Company", "Email", "Phone", "Product Type", "Quantity", "Message", "Status", "Created At"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{o.ID, o.Name, o.Company, o.Email, o.Phone, o.ProductType, o.Quantity, o.Message, o.Status, o.CreatedAt})
	}

	return srv.render("Bulk Orders", "bulk_orders", headers, rows)
}

// ExportNewsletter renders the listed subscriptions, one row per address
func (srv *submissionExportService) ExportNewsletter(ctx context.Context) (*usecase.Spreadsheet, error) {
	subscriptions, err := srv.newsletter.List(ctx)
	if err != nil {
		return nil, err
	}

	headers := []string{"ID", "Email", "Subscribed At"}
	rows := make([][]string, 0, len(subscriptions))
	for _, s := range subscriptions {
		rows = append(rows, []string{s.ID, s.Email, s.CreatedAt})
	}

	return srv.render("Newsletter", "newsletter_subscribers", headers, rows)
}

func (srv *submissionExportService) render(sheetName, filePrefix string, headers []string, rows [][]string) (*usecase.Spreadsheet, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WithCause(err)
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().SetValue(v)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, domainerrors.ErrExportFailed.WithCause(err)
	}

	return &usecase.Spreadsheet{
		FileName: fmt.Sprintf("%s_%s.xlsx", filePrefix, srv.now().UTC().Format("2006-01-02")),
		Data:     buf.Bytes(),
	}, nil
}
