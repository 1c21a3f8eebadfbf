package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/KurtMante/clinic-ops-api/internal/models"
	appErrors "github.com/KurtMante/clinic-ops-api/pkg/errors"
	"github.com/KurtMante/clinic-ops-api/pkg/export"
)

// ExportFormat names a day-sheet output format.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportResult is a rendered day sheet ready to stream to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

var daySheetHeaders = []string{"Time", "Patient", "Service", "Symptom", "Status"}

// ExportService renders a clinic day sheet, the front-desk printout of every
// appointment on a given date, ordered by time.
type ExportService struct {
	appointments dayAppointmentLister
	catalog      serviceCatalog
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	logger       *zap.Logger
	loc          *time.Location
}

func NewExportService(appointments dayAppointmentLister, catalog serviceCatalog, logger *zap.Logger, loc *time.Location) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = models.ClinicLocation()
	}
	return &ExportService{
		appointments: appointments,
		catalog:      catalog,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		logger:       logger,
		loc:          loc,
	}
}

// DaySheet builds and renders the sheet for one clinic-local date.
func (s *ExportService) DaySheet(ctx context.Context, date time.Time, format ExportFormat) (*ExportResult, error) {
	local := date.In(s.loc)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	appts, err := s.appointments.ListBetween(ctx, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load appointments")
	}

	serviceNames, err := s.serviceNames(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(appts, func(i, j int) bool {
		return appts[i].PreferredDateTime.Time.Before(appts[j].PreferredDateTime.Time)
	})

	day := from.Format("2006-01-02")
	sheet := export.Sheet{
		Title:   fmt.Sprintf("Day Sheet %s", day),
		Headers: daySheetHeaders,
	}
	for _, apt := range appts {
		serviceName := serviceNames[apt.ServiceID]
		if serviceName == "" {
			serviceName = apt.ServiceID
		}
		sheet.Rows = append(sheet.Rows, map[string]string{
			"Time":    apt.PreferredDateTime.In(s.loc).Format("15:04"),
			"Patient": apt.PatientID,
			"Service": serviceName,
			"Symptom": apt.Symptom,
			"Status":  string(apt.Status),
		})
	}

	switch format {
	case ExportCSV:
		data, err := s.csv.Render(sheet)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("day-sheet-%s.csv", day),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportPDF:
		data, err := s.pdf.Render(sheet, time.Now().In(s.loc))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("day-sheet-%s.pdf", day),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func (s *ExportService) serviceNames(ctx context.Context) (map[string]string, error) {
	services, err := s.catalog.ListActive(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load services")
	}
	names := make(map[string]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}
	return names, nil
}
