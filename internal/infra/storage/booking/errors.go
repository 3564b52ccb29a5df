package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается при нарушении уникальности (date, hour)
	// среди upcoming бронирований
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrClientDayTaken возвращается при нарушении уникальности (client_id, date)
	// среди upcoming бронирований
	ErrClientDayTaken = errors.New("booking.repository: client already has a booking on this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
