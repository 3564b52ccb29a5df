package blockedtimes

import "errors"

var (
	// ErrInvalidTime возвращается при неверном формате времени
	// (ожидается "HH:MM")
	ErrInvalidTime = errors.New("time must be in HH:MM format")

	// ErrInvalidDayOfWeek возвращается при дне недели вне диапазона 0-6
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
