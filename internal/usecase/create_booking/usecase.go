package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	carRepo      CarRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка автомобиля и вставка выполняются в сериализуемой транзакции;
// доступность автомобиля на этом шаге не меняется - она снимается при оплате
func (uc *UseCase) Execute(ctx context.Context, identity domain.Identity, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, car=%d, pickup=%s, return=%s",
		req.CustomerID, req.CarID,
		req.PickupDate.Format(domain.DateFormat), req.ReturnDate.Format(domain.DateFormat))

	// 1. Бронирования создают только клиенты
	if !identity.IsCustomer() {
		uc.logger.Warn("CreateBooking: user=%d with role=%s cannot create bookings", identity.UserID, identity.Role)
		return nil, ErrForbidden
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем период бронирования относительно текущей даты
	now := uc.timeProvider.Now()
	if err := validateDates(req.PickupDate, req.ReturnDate, now); err != nil {
		uc.logger.Warn("CreateBooking: invalid dates for customer=%d: %v", req.CustomerID, err)
		return nil, err
	}

	var (
		result *domain.Booking
		car    *domain.Car
	)

	// 4. Проверка автомобиля и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		car, err = uc.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				uc.logger.Warn("CreateBooking: car id=%d not found", req.CarID)
				return ErrCarNotFound
			}
			uc.logger.Error("CreateBooking: failed to get car id=%d: %v", req.CarID, err)
			return fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
		}

		if !car.Available {
			uc.logger.Warn("CreateBooking: car id=%d is not available", req.CarID)
			return ErrCarNotAvailable
		}

		// Стоимость фиксируется по текущему тарифу автомобиля
		booking := &domain.Booking{
			CustomerID:    req.CustomerID,
			CarID:         req.CarID,
			PickupDate:    truncateToDay(req.PickupDate),
			ReturnDate:    truncateToDay(req.ReturnDate),
			TotalCost:     domain.ComputeTotalCost(req.PickupDate, req.ReturnDate, car.DailyRate),
			PaymentMethod: domain.PaymentMethodPending,
			PaymentStatus: domain.PaymentStatusPending,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking for customer=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created for customer=%d, total=%.2f",
		result.ID, result.CustomerID, result.TotalCost)

	return buildResponse(result, car), nil
}

func buildResponse(b *domain.Booking, car *domain.Car) *Response {
	return &Response{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CarID:         b.CarID,
		PickupDate:    b.PickupDate.Format(domain.DateFormat),
		ReturnDate:    b.ReturnDate.Format(domain.DateFormat),
		Days:          b.Days(),
		DailyRate:     car.DailyRate,
		TotalCost:     b.TotalCost,
		PaymentMethod: string(b.PaymentMethod),
		PaymentStatus: string(b.PaymentStatus),
		CarName:       car.Name,
		CarModel:      car.Model,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
