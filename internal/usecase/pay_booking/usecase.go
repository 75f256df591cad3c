package pay_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

// UseCase use case для оплаты бронирования
type UseCase struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case оплаты бронирования
// Оплата и снятие доступности автомобиля выполняются в сериализуемой
// транзакции; доступность снимается условным обновлением, поэтому из двух
// конкурирующих оплат одного автомобиля успешной становится ровно одна,
// у проигравшей платеж фиксируется со статусом Failed
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PayBooking: booking=%d, customer=%d, method=%s", req.BookingID, req.CustomerID, req.Method)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PayBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		result   *domain.Booking
		carTaken bool
	)

	// 2. Оплата в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("PayBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("PayBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Оплачивать бронирование может только его владелец
		if booking.CustomerID != req.CustomerID {
			uc.logger.Warn("PayBooking: customer=%d is not the owner of booking id=%d", req.CustomerID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBePaid() {
			uc.logger.Warn("PayBooking: booking id=%d in status=%s cannot be paid", req.BookingID, booking.PaymentStatus)
			return ErrAlreadyProcessed
		}

		// Условное снятие доступности: ноль затронутых строк означает,
		// что автомобиль успел занять конкурирующий платеж
		if err := uc.carRepo.MarkUnavailable(txCtx, booking.CarID); err != nil {
			if errors.Is(err, carRepo.ErrCarNotAvailable) {
				uc.logger.Warn("PayBooking: car id=%d already taken, recording failed payment for booking id=%d",
					booking.CarID, req.BookingID)

				if updErr := uc.bookingRepo.UpdatePayment(txCtx, req.BookingID, method, domain.PaymentStatusFailed); updErr != nil {
					uc.logger.Error("PayBooking: failed to record failed payment for booking id=%d: %v", req.BookingID, updErr)
					return fmt.Errorf("%w: failed to record failed payment: %v", ErrInternal, updErr)
				}

				// транзакция фиксируется: запись о неудачном платеже
				// должна сохраниться
				carTaken = true
				return nil
			}
			uc.logger.Error("PayBooking: failed to mark car id=%d unavailable: %v", booking.CarID, err)
			return fmt.Errorf("%w: failed to mark car unavailable: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.UpdatePayment(txCtx, req.BookingID, method, domain.PaymentStatusCompleted); err != nil {
			uc.logger.Error("PayBooking: failed to update payment for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		booking.PaymentMethod = method
		booking.PaymentStatus = domain.PaymentStatusCompleted
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if carTaken {
		return nil, ErrCarTaken
	}

	uc.logger.Info("PayBooking: booking id=%d paid with method=%s, car id=%d reserved",
		result.ID, result.PaymentMethod, result.CarID)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		CarID:         result.CarID,
		PickupDate:    result.PickupDate.Format(domain.DateFormat),
		ReturnDate:    result.ReturnDate.Format(domain.DateFormat),
		TotalCost:     result.TotalCost,
		PaymentMethod: string(result.PaymentMethod),
		PaymentStatus: string(result.PaymentStatus),
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
