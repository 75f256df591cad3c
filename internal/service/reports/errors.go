package reports

import "errors"

var (
	// ErrForbidden возвращается, когда отчетность запрашивает не администратор
	ErrForbidden = errors.New("reports.service: operation requires admin role")

	// ErrUnknownReport возвращается при запросе отчета неизвестного типа
	ErrUnknownReport = errors.New("reports.service: unknown report kind")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports.service: internal error")
)
