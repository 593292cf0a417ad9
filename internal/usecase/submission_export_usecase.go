package usecase

import "context"

// Spreadsheet is a rendered workbook ready for download
type Spreadsheet struct {
	FileName string
	Data     []byte
}

// SubmissionExportUsecase renders form submissions as spreadsheets
type SubmissionExportUsecase interface {
	ExportBulkOrders(ctx context.Context) (*Spreadsheet, error)
	ExportNewsletter(ctx context.Context) (*Spreadsheet, error)
}
