package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/kamasanicharan/BoldScholars/internal/models"
	"github.com/kamasanicharan/BoldScholars/internal/repositories"
)

// exportService produces XLSX workbooks of the member roster and the
// feedback log for offline review by admins.
type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportUsers(ctx context.Context) (*bytes.Buffer, error) {
	members, _, err := s.repo.UserProfile().List(ctx, repositories.UserFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list members for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Members"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"UID", "Name", "Email", "Role", "Phone", "Education", "Profession", "Joined"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, m := range members {
		values := []interface{}{
			m.UID,
			m.Name,
			m.Email,
			string(m.Role),
			m.Phone,
			m.Education,
			m.Profession,
			m.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write members workbook: %w", err)
	}

	s.logger.Info("members exported", "count", len(members))
	return buf, nil
}

func (s *exportService) ExportFeedback(ctx context.Context) (*bytes.Buffer, error) {
	entries, _, err := s.repo.Feedback().List(ctx, repositories.FeedbackFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Feedback"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "From", "Message", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, fb := range entries {
		author := fb.User
		if author == "" {
			author = models.GuestAuthor
		}
		values := []interface{}{
			fb.ID,
			author,
			fb.Message,
			fb.Date.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write feedback workbook: %w", err)
	}

	s.logger.Info("feedback exported", "count", len(entries))
	return buf, nil
}
