package cars

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/service/cars/models"
)

// Service сервис каталога автомобилей
type Service struct {
	carRepo CarRepository
	images  ImageStore
	logger  Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, images ImageStore, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		images:  images,
		logger:  logger,
	}
}

// List возвращает каталог автомобилей по фильтру
// Доступен без авторизации; фильтр доступности задает вызывающий слой
func (s *Service) List(ctx context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error) {
	filter := domain.CarFilter{
		SearchTerm:   strings.TrimSpace(req.SearchTerm),
		Seats:        req.Seats,
		Availability: req.Availability,
	}

	cars, err := s.carRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCars(cars), nil
}

// GetByID возвращает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("GetByID: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCar(car), nil
}

// Create создает автомобиль (только администратор)
// Изображение задается либо внешней ссылкой, либо загруженным файлом
func (s *Service) Create(ctx context.Context, identity domain.Identity, req *models.CreateCarRequest) (*models.CarResponse, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("Create: user=%d is not an admin", identity.UserID)
		return nil, ErrForbidden
	}

	if err := validateCarFields(req.Name, req.Brand, req.Model, req.Seats, req.DailyRate, req.ImageURL, req.Upload); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	car := &domain.Car{
		Name:      strings.TrimSpace(req.Name),
		Brand:     strings.TrimSpace(req.Brand),
		Model:     strings.TrimSpace(req.Model),
		Seats:     req.Seats,
		DailyRate: req.DailyRate,
		Available: true,
	}
	if req.Available != nil {
		car.Available = *req.Available
	}

	if err := s.applyImage(car, req.ImageURL, req.Upload); err != nil {
		return nil, err
	}

	created, err := s.carRepo.Create(ctx, car)
	if err != nil {
		// созданный файл изображения не должен остаться без записи
		if car.HasUploadedImage() {
			if delErr := s.images.Delete(*car.ImagePath); delErr != nil {
				s.logger.Error("Create: failed to remove orphan image %s: %v", *car.ImagePath, delErr)
			}
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: car id=%d created by admin=%d", created.ID, identity.UserID)
	return models.FromDomainCar(created), nil
}

// Update обновляет автомобиль (только администратор)
// Замена загруженного изображения удаляет прежний файл,
// переход на внешнюю ссылку очищает сохраненный путь
func (s *Service) Update(ctx context.Context, identity domain.Identity, id int64, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	if !identity.IsAdmin() {
		s.logger.Warn("Update: user=%d is not an admin", identity.UserID)
		return nil, ErrForbidden
	}

	if err := validateCarFields(req.Name, req.Brand, req.Model, req.Seats, req.DailyRate, req.ImageURL, req.Upload); err != nil {
		s.logger.Warn("Update: validation failed for car id=%d: %v", id, err)
		return nil, err
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%d not found", id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	var oldImagePath string
	if car.HasUploadedImage() {
		oldImagePath = *car.ImagePath
	}

	car.Name = strings.TrimSpace(req.Name)
	car.Brand = strings.TrimSpace(req.Brand)
	car.Model = strings.TrimSpace(req.Model)
	car.Seats = req.Seats
	car.DailyRate = req.DailyRate
	if req.Available != nil {
		car.Available = *req.Available
	}

	imageReplaced := req.Upload != nil || strings.TrimSpace(req.ImageURL) != ""
	if imageReplaced {
		car.ImageURL = nil
		car.ImagePath = nil
		if err := s.applyImage(car, req.ImageURL, req.Upload); err != nil {
			return nil, err
		}
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// прежний файл удаляется только после успешного обновления записи
	if imageReplaced && oldImagePath != "" {
		if delErr := s.images.Delete(oldImagePath); delErr != nil {
			s.logger.Error("Update: failed to remove old image %s for car id=%d: %v", oldImagePath, id, delErr)
		}
	}

	s.logger.Info("Update: car id=%d updated by admin=%d", id, identity.UserID)
	return models.FromDomainCar(car), nil
}

// Delete удаляет автомобиль (только администратор)
// Автомобиль с бронированиями удалить нельзя
func (s *Service) Delete(ctx context.Context, identity domain.Identity, id int64) error {
	if !identity.IsAdmin() {
		s.logger.Warn("Delete: user=%d is not an admin", identity.UserID)
		return ErrForbidden
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Delete: car id=%d not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, carRepo.ErrCarNotFound):
			return ErrCarNotFound
		case errors.Is(err, carRepo.ErrCarInUse):
			s.logger.Warn("Delete: car id=%d is referenced by bookings", id)
			return ErrCarInUse
		default:
			s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	if car.HasUploadedImage() {
		if delErr := s.images.Delete(*car.ImagePath); delErr != nil {
			s.logger.Error("Delete: failed to remove image %s for car id=%d: %v", *car.ImagePath, id, delErr)
		}
	}

	s.logger.Info("Delete: car id=%d deleted by admin=%d", id, identity.UserID)
	return nil
}

// applyImage сохраняет загруженный файл или устанавливает внешнюю ссылку
// Загруженный файл имеет приоритет: ссылка при этом очищается
func (s *Service) applyImage(car *domain.Car, imageURL string, upload *models.ImageUpload) error {
	if upload != nil {
		ref, err := s.images.Save(upload.Filename, upload.Data)
		if err != nil {
			s.logger.Error("applyImage: failed to save image %s: %v", upload.Filename, err)
			return fmt.Errorf("%w: applyImage - image store error: %v", ErrInternal, err)
		}
		car.ImagePath = &ref
		car.ImageURL = nil
		return nil
	}

	if url := strings.TrimSpace(imageURL); url != "" {
		car.ImageURL = &url
		car.ImagePath = nil
	}
	return nil
}

func validateCarFields(name, brand, model string, seats int, dailyRate float64, imageURL string, upload *models.ImageUpload) error {
	ve := domain.NewValidationError()

	name = strings.TrimSpace(name)
	if name == "" {
		ve.Add("name", "name is required")
	} else if len(name) > domain.MaxCarNameLength {
		ve.Add("name", fmt.Sprintf("name must be at most %d characters", domain.MaxCarNameLength))
	}

	brand = strings.TrimSpace(brand)
	if brand == "" {
		ve.Add("brand", "brand is required")
	} else if len(brand) > domain.MaxBrandLength {
		ve.Add("brand", fmt.Sprintf("brand must be at most %d characters", domain.MaxBrandLength))
	}

	model = strings.TrimSpace(model)
	if model == "" {
		ve.Add("model", "model is required")
	} else if len(model) > domain.MaxModelLength {
		ve.Add("model", fmt.Sprintf("model must be at most %d characters", domain.MaxModelLength))
	}

	if seats < domain.MinSeats || seats > domain.MaxSeats {
		ve.Add("seats", fmt.Sprintf("seats must be between %d and %d", domain.MinSeats, domain.MaxSeats))
	}

	if dailyRate < domain.MinDailyRate || dailyRate > domain.MaxDailyRate {
		ve.Add("dailyRate", fmt.Sprintf("daily rate must be between %.2f and %.2f", domain.MinDailyRate, domain.MaxDailyRate))
	}

	if url := strings.TrimSpace(imageURL); url != "" {
		if len(url) > domain.MaxImageURLLength {
			ve.Add("imageUrl", fmt.Sprintf("image URL must be at most %d characters", domain.MaxImageURLLength))
		}
		if upload != nil {
			ve.Add("imageUrl", "image URL and uploaded image are mutually exclusive")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
