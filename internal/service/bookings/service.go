package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, identity domain.Identity, id int64) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, identity, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований клиента, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	details, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromBookingDetailsList(details), nil
}

// ListAll получает все бронирования, сначала новые (только администратор)
func (s *Service) ListAll(ctx context.Context, identity domain.Identity) (*models.BookingListResponse, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("ListAll: user=%d is not an admin", identity.UserID)
		return nil, ErrAccessDenied
	}

	details, err := s.bookingRepo.ListAll(ctx, 0)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromBookingDetailsList(details), nil
}

// Cancel отменяет бронирование: запись удаляется, автомобиль освобождается
// Клиент отменяет только свои бронирования, администратор - любые
func (s *Service) Cancel(ctx context.Context, identity domain.Identity, id int64) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.fetch(ctx, identity, id, "Cancel")
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d in status=%s cannot be cancelled", id, booking.PaymentStatus)
			return ErrCannotCancel
		}

		// автомобиль освобождается безусловно, даже если оплата не проходила
		if err := s.carRepo.SetAvailability(ctx, booking.CarID, true); err != nil {
			s.logger.Error("Cancel: failed to release car id=%d for booking id=%d: %v", booking.CarID, id, err)
			return fmt.Errorf("%w: Cancel - failed to release car: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: failed to delete booking id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Cancel: booking id=%d cancelled by user=%d, car id=%d released", id, identity.UserID, booking.CarID)
		return nil
	})
}

// fetch загружает бронирование и проверяет права доступа
func (s *Service) fetch(ctx context.Context, identity domain.Identity, id int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !identity.IsAdmin() && booking.CustomerID != identity.UserID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, identity.UserID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
