package domain

// Business validation constants
const (
	MaxCarNameLength  = 100
	MaxBrandLength    = 50
	MaxModelLength    = 50
	MinSeats          = 1
	MaxSeats          = 50
	MinDailyRate      = 0.01
	MaxDailyRate      = 9999.99
	MaxImageURLLength = 200

	// SeatsEightPlus sentinel seat-filter value meaning "8 seats or more"
	SeatsEightPlus = 8
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidPaymentMethods способы оплаты, которые может выбрать клиент
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
}
