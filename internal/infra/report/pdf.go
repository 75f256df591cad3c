package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// ErrRender возвращается при ошибке генерации PDF-документа
var ErrRender = errors.New("report: failed to render pdf")

// BookingRow строка отчета по бронированиям
type BookingRow struct {
	ID               int64
	CustomerUsername string
	CarName          string
	CarModel         string
	PickupDate       time.Time
	ReturnDate       time.Time
	Days             int
	TotalCost        float64
}

// CarRow строка отчета по автопарку
type CarRow struct {
	Name        string
	Model       string
	Available   bool
	ImageSource string
}

// CustomerRow строка отчета по клиентам
type CustomerRow struct {
	UserID        int64
	Username      string
	TotalBookings int64
	TotalSpent    float64
}

// Renderer генерирует PDF-отчеты
type Renderer struct{}

// NewRenderer создает новый генератор отчетов
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderBookings пишет отчет по бронированиям (альбомная ориентация)
func (r *Renderer) RenderBookings(w io.Writer, rows []BookingRow, generatedAt time.Time) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	writeTitle(pdf, "Bookings Report", generatedAt)

	headers := []string{"Booking ID", "Customer", "Car", "Pickup Date", "Return Date", "Days", "Total Cost"}
	widths := []float64{25, 45, 65, 35, 35, 20, 30}
	writeHeaderRow(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 9)
	var total float64
	for _, row := range rows {
		cells := []string{
			fmt.Sprintf("#%d", row.ID),
			row.CustomerUsername,
			fmt.Sprintf("%s (%s)", row.CarName, row.CarModel),
			row.PickupDate.Format("Jan 02, 2006"),
			row.ReturnDate.Format("Jan 02, 2006"),
			fmt.Sprintf("%d", row.Days),
			fmt.Sprintf("$%.2f", row.TotalCost),
		}
		writeRow(pdf, cells, widths)
		total += row.TotalCost
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Bookings: %d", len(rows)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Total Revenue: $%.2f", total), "", 1, "L", false, 0, "")

	return output(pdf, w)
}

// RenderCars пишет отчет по автопарку
func (r *Renderer) RenderCars(w io.Writer, rows []CarRow, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	writeTitle(pdf, "Car Inventory Report", generatedAt)

	headers := []string{"Car Name", "Model", "Status", "Image Source"}
	widths := []float64{60, 50, 40, 40}
	writeHeaderRow(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		status := "Booked"
		if row.Available {
			status = "Available"
		}
		writeRow(pdf, []string{row.Name, row.Model, status, row.ImageSource}, widths)
	}

	return output(pdf, w)
}

// RenderCustomers пишет отчет по клиентам
func (r *Renderer) RenderCustomers(w io.Writer, rows []CustomerRow, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	writeTitle(pdf, "Customers Report", generatedAt)

	headers := []string{"Customer ID", "Username", "Total Bookings", "Total Spent"}
	widths := []float64{40, 60, 45, 45}
	writeHeaderRow(pdf, headers, widths)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := []string{
			fmt.Sprintf("%d", row.UserID),
			row.Username,
			fmt.Sprintf("%d", row.TotalBookings),
			fmt.Sprintf("$%.2f", row.TotalSpent),
		}
		writeRow(pdf, cells, widths)
	}

	return output(pdf, w)
}

func writeTitle(pdf *gofpdf.Fpdf, title string, generatedAt time.Time) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeHeaderRow(pdf *gofpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func writeRow(pdf *gofpdf.Fpdf, cells []string, widths []float64) {
	for i, c := range cells {
		pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}
