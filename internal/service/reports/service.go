package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/infra/report"
	"github.com/m04kA/SMC-RentalService/internal/service/reports/models"
)

// Kind тип отчета
type Kind string

const (
	KindBookings  Kind = "bookings"
	KindCars      Kind = "cars"
	KindCustomers Kind = "customers"
)

const recentBookingsLimit = 5

// Service сервис административной отчетности
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	userRepo    UserRepository
	renderer    Renderer
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетности
func NewService(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	userRepo UserRepository,
	renderer Renderer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Dashboard возвращает сводку для административного дашборда:
// счетчики и последние бронирования
func (s *Service) Dashboard(ctx context.Context, identity domain.Identity) (*models.DashboardResponse, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("Dashboard: user=%d is not an admin", identity.UserID)
		return nil, ErrForbidden
	}

	totalCars, err := s.carRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count cars: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count cars: %v", ErrInternal, err)
	}

	availableCars, err := s.carRepo.CountAvailable(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count available cars: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count available cars: %v", ErrInternal, err)
	}

	totalBookings, err := s.bookingRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count bookings: %v", ErrInternal, err)
	}

	totalCustomers, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to count customers: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - count customers: %v", ErrInternal, err)
	}

	recent, err := s.bookingRepo.ListAll(ctx, recentBookingsLimit)
	if err != nil {
		s.logger.Error("Dashboard: failed to list recent bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - list recent bookings: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		TotalCars:      totalCars,
		AvailableCars:  availableCars,
		TotalBookings:  totalBookings,
		TotalCustomers: totalCustomers,
		RecentBookings: make([]models.RecentBooking, 0, len(recent)),
	}
	for _, d := range recent {
		resp.RecentBookings = append(resp.RecentBookings, models.FromBookingDetails(d))
	}

	return resp, nil
}

// Export генерирует PDF-отчет указанного типа и пишет его в w
// Возвращает имя файла для выдачи вложением
func (s *Service) Export(ctx context.Context, identity domain.Identity, kind Kind, w io.Writer) (string, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("Export: user=%d is not an admin", identity.UserID)
		return "", ErrForbidden
	}

	now := time.Now()

	switch kind {
	case KindBookings:
		return s.exportBookings(ctx, w, now)
	case KindCars:
		return s.exportCars(ctx, w, now)
	case KindCustomers:
		return s.exportCustomers(ctx, w, now)
	default:
		s.logger.Warn("Export: unknown report kind=%s", kind)
		return "", ErrUnknownReport
	}
}

func (s *Service) exportBookings(ctx context.Context, w io.Writer, now time.Time) (string, error) {
	details, err := s.bookingRepo.ListAll(ctx, 0)
	if err != nil {
		s.logger.Error("Export: failed to list bookings: %v", err)
		return "", fmt.Errorf("%w: Export - list bookings: %v", ErrInternal, err)
	}

	rows := make([]report.BookingRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, report.BookingRow{
			ID:               d.ID,
			CustomerUsername: d.CustomerUsername,
			CarName:          d.CarName,
			CarModel:         d.CarModel,
			PickupDate:       d.PickupDate,
			ReturnDate:       d.ReturnDate,
			Days:             d.Days(),
			TotalCost:        d.TotalCost,
		})
	}

	if err := s.renderer.RenderBookings(w, rows, now); err != nil {
		s.logger.Error("Export: failed to render bookings report: %v", err)
		return "", fmt.Errorf("%w: Export - render bookings: %v", ErrInternal, err)
	}

	s.logger.Info("Export: bookings report generated, rows=%d", len(rows))
	return exportFilename(KindBookings, now), nil
}

func (s *Service) exportCars(ctx context.Context, w io.Writer, now time.Time) (string, error) {
	cars, err := s.carRepo.List(ctx, domain.CarFilter{})
	if err != nil {
		s.logger.Error("Export: failed to list cars: %v", err)
		return "", fmt.Errorf("%w: Export - list cars: %v", ErrInternal, err)
	}

	rows := make([]report.CarRow, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, report.CarRow{
			Name:        c.Name,
			Model:       c.Model,
			Available:   c.Available,
			ImageSource: c.ImageSource(),
		})
	}

	if err := s.renderer.RenderCars(w, rows, now); err != nil {
		s.logger.Error("Export: failed to render cars report: %v", err)
		return "", fmt.Errorf("%w: Export - render cars: %v", ErrInternal, err)
	}

	s.logger.Info("Export: cars report generated, rows=%d", len(rows))
	return exportFilename(KindCars, now), nil
}

func (s *Service) exportCustomers(ctx context.Context, w io.Writer, now time.Time) (string, error) {
	stats, err := s.userRepo.ListCustomerStats(ctx)
	if err != nil {
		s.logger.Error("Export: failed to list customer stats: %v", err)
		return "", fmt.Errorf("%w: Export - list customer stats: %v", ErrInternal, err)
	}

	rows := make([]report.CustomerRow, 0, len(stats))
	for _, st := range stats {
		rows = append(rows, report.CustomerRow{
			UserID:        st.UserID,
			Username:      st.Username,
			TotalBookings: st.TotalBookings,
			TotalSpent:    st.TotalSpent,
		})
	}

	if err := s.renderer.RenderCustomers(w, rows, now); err != nil {
		s.logger.Error("Export: failed to render customers report: %v", err)
		return "", fmt.Errorf("%w: Export - render customers: %v", ErrInternal, err)
	}

	s.logger.Info("Export: customers report generated, rows=%d", len(rows))
	return exportFilename(KindCustomers, now), nil
}

func exportFilename(kind Kind, now time.Time) string {
	return fmt.Sprintf("%s_report_%s.pdf", kind, now.Format("2006-01-02"))
}
