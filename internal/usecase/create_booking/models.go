package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента (из токена)
	CarID      int64     // ID автомобиля
	PickupDate time.Time // Дата получения (без времени)
	ReturnDate time.Time // Дата возврата (без времени)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64   // ID созданного бронирования
	CustomerID int64   // ID клиента
	CarID      int64   // ID автомобиля
	PickupDate string  // Дата получения (YYYY-MM-DD)
	ReturnDate string  // Дата возврата (YYYY-MM-DD)
	Days       int     // Длительность в днях
	DailyRate  float64 // Тариф на момент бронирования
	TotalCost  float64 // Итоговая стоимость

	PaymentMethod string // Способ оплаты (Pending до оплаты)
	PaymentStatus string // Статус оплаты

	// Денормализованные данные автомобиля
	CarName  string
	CarModel string

	CreatedAt time.Time
	UpdatedAt time.Time
}
