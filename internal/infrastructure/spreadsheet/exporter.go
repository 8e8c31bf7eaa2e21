package spreadsheet

import (
	"bytes"
	"fmt"

	"meridian_moving/internal/domain/entities"
	"meridian_moving/internal/domain/tariff"

	"github.com/xuri/excelize/v2"
)

// Exporter builds the back-office Excel report: one sheet of jobs, one of
// customers and a revenue summary.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

var jobHeaders = []string{
	"Job #", "Invoice #", "Title", "Status", "Customer ID",
	"Crew", "Est. Hours", "Actual Hours", "Distance (mi)",
	"Boxes Quoted", "Boxes Actual", "Total Estimate", "Total Actual", "Created",
}

var customerHeaders = []string{
	"Name", "Email", "Phone", "Address", "City", "State", "Zip", "Referral", "Created",
}

// Export renders the workbook into a buffer ready to stream to the client.
func (e *Exporter) Export(jobs []entities.Job, customers []entities.Customer) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Jobs"); err != nil {
		return nil, err
	}
	if err := e.writeJobs(f, jobs); err != nil {
		return nil, err
	}
	if err := e.writeCustomers(f, customers); err != nil {
		return nil, err
	}
	if err := e.writeSummary(f, jobs, customers); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func (e *Exporter) writeJobs(f *excelize.File, jobs []entities.Job) error {
	for i, h := range jobHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Jobs", cell, h); err != nil {
			return err
		}
	}

	for row, j := range jobs {
		values := []interface{}{
			j.JobNumber,
			j.InvoiceNumber,
			j.Title,
			j.Status.DisplayName(),
			j.CustomerID,
			j.CrewSize,
			j.EstimatedHours,
			j.ActualHours,
			j.TotalDistance,
			j.BoxCountQuoted,
			j.BoxCountActual,
			j.TotalEstimate.Dollars(),
			j.TotalActual.Dollars(),
			formatDate(j),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Jobs", cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth("Jobs", "A", "N", 16)
}

func (e *Exporter) writeCustomers(f *excelize.File, customers []entities.Customer) error {
	if _, err := f.NewSheet("Customers"); err != nil {
		return err
	}

	for i, h := range customerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Customers", cell, h); err != nil {
			return err
		}
	}

	for row, c := range customers {
		values := []interface{}{
			c.FullName(),
			c.Email,
			c.Phone,
			c.Address,
			c.City,
			c.State,
			c.Zip,
			c.ReferralSource,
			c.CreatedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Customers", cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth("Customers", "A", "I", 18)
}

func (e *Exporter) writeSummary(f *excelize.File, jobs []entities.Job, customers []entities.Customer) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return err
	}

	var actual, potential tariff.Cents
	var paid, completed int
	for _, j := range jobs {
		switch {
		case j.TotalActual > 0:
			actual += j.TotalActual
		case j.TotalEstimate > 0:
			potential += j.TotalEstimate
		}
		switch j.Status {
		case entities.JobStatusPaid:
			paid++
		case entities.JobStatusCompleted:
			completed++
		}
	}

	rows := [][]interface{}{
		{"Total Customers", len(customers)},
		{"Total Jobs", len(jobs)},
		{"Completed Jobs", completed},
		{"Paid Jobs", paid},
		{"Actual Revenue", actual.Dollars()},
		{"Potential Revenue", potential.Dollars()},
	}
	for row, pair := range rows {
		for col, v := range pair {
			cell, err := excelize.CoordinatesToCellName(col+1, row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Summary", cell, v); err != nil {
				return err
			}
		}
	}

	return f.SetColWidth("Summary", "A", "B", 22)
}

func formatDate(j entities.Job) string {
	if j.CreatedAt.IsZero() {
		return ""
	}
	return j.CreatedAt.Format("2006-01-02")
}

// Filename names the download with the export date baked in.
func Filename(date string) string {
	return fmt.Sprintf("moving-report-%s.xlsx", date)
}
