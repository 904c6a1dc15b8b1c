package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yurtswap/yurtswap-api/internal/models"
	appErrors "github.com/yurtswap/yurtswap-api/pkg/errors"
	"github.com/yurtswap/yurtswap-api/pkg/export"
)

// Export formats accepted by the stats export endpoints.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

type statsProvider interface {
	RoomStats(ctx context.Context) (*models.RoomStats, bool, error)
	RoommateStats(ctx context.Context) (*models.RoommateStats, bool, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportFile is a rendered statistics document served inline.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders the derived statistics as downloadable CSV or
// PDF documents.
type ExportService struct {
	stats  statsProvider
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(stats statsProvider, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{stats: stats, csv: csv, pdf: pdf, logger: logger}
}

// RoomStats renders the room statistics in the requested format.
func (s *ExportService) RoomStats(ctx context.Context, format string) (*ExportFile, error) {
	stats, _, err := s.stats.RoomStats(ctx)
	if err != nil {
		return nil, err
	}
	return s.render("room-stats", "Room Statistics", roomStatsDataset(stats), format)
}

// RoommateStats renders the roommate-search statistics in the requested
// format.
func (s *ExportService) RoommateStats(ctx context.Context, format string) (*ExportFile, error) {
	stats, _, err := s.stats.RoommateStats(ctx)
	if err != nil {
		return nil, err
	}
	return s.render("roommate-stats", "Roommate Statistics", roommateStatsDataset(stats), format)
}

func (s *ExportService) render(name, title string, dataset export.Dataset, format string) (*ExportFile, error) {
	stamp := time.Now().UTC().Format("20060102-150405")
	switch strings.ToLower(format) {
	case FormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-%s.csv", name, stamp),
			ContentType: "text/csv",
			Payload:     payload,
		}, nil
	case FormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{
			Filename:    fmt.Sprintf("%s-%s.pdf", name, stamp),
			ContentType: "application/pdf",
			Payload:     payload,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

func roomStatsDataset(stats *models.RoomStats) export.Dataset {
	dataset := export.Dataset{Headers: []string{"Metric", "Count"}}
	add := func(metric string, count int) {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Metric": metric,
			"Count":  strconv.Itoa(count),
		})
	}

	add("Total Rooms", stats.TotalRooms)
	for _, g := range stats.RoomsByGender {
		add(fmt.Sprintf("Gender: %s", g.Gender), g.Count)
	}
	for _, c := range stats.RoomsByCampus {
		add(fmt.Sprintf("Campus: %s", c.Campus), c.Count)
	}
	for _, c := range stats.RoomsByCapacity {
		add(fmt.Sprintf("Capacity: %s", c.Capacity), c.Count)
	}
	add("With Bunk Bed", stats.RoomsWithBunkBed)
	add("Without Bunk Bed", stats.RoomsWithoutBunkBed)
	return dataset
}

func roommateStatsDataset(stats *models.RoommateStats) export.Dataset {
	dataset := export.Dataset{Headers: []string{"Metric", "Count"}}
	add := func(metric string, count int) {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Metric": metric,
			"Count":  strconv.Itoa(count),
		})
	}

	add("Total Roommate Searches", stats.TotalRoommateSearches)
	for _, c := range stats.SearchesByCampus {
		add(fmt.Sprintf("Campus: %s", c.Campus), c.Count)
	}
	for _, b := range stats.SearchesByBuilding {
		add(fmt.Sprintf("Building: %s", b.Building), b.Count)
	}
	return dataset
}
