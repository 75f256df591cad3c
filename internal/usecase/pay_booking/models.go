package pay_booking

import "time"

// CardDetails реквизиты карты для симуляции оплаты
// Поля проверяются только на заполненность, платежный шлюз не вызывается
type CardDetails struct {
	Number     string
	HolderName string
	Expiry     string
	CVV        string
}

// Request модель запроса на оплату бронирования
type Request struct {
	BookingID  int64
	CustomerID int64 // ID клиента (из токена)
	Method     string
	Card       *CardDetails // обязательно при Method = "Card"
}

// Response модель ответа с оплаченным бронированием
type Response struct {
	ID            int64   `json:"id"`
	CustomerID    int64   `json:"customerId"`
	CarID         int64   `json:"carId"`
	PickupDate    string  `json:"pickupDate"`
	ReturnDate    string  `json:"returnDate"`
	TotalCost     float64 `json:"totalCost"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`

	UpdatedAt time.Time `json:"updatedAt"`
}
