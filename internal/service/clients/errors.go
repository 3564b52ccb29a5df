package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrNameTaken возвращается, когда имя клиента уже занято
	ErrNameTaken = errors.New("client name already taken")

	// ErrInvalidName возвращается при пустом имени (после trim)
	ErrInvalidName = errors.New("client name must not be empty")

	// ErrInvalidPIN возвращается при неверном формате PIN
	// (ожидается ровно 4 цифры)
	ErrInvalidPIN = errors.New("pin must be a 4-digit number")

	// ErrInvalidSessions возвращается при отрицательном количестве занятий
	ErrInvalidSessions = errors.New("sessions count must not be negative")

	// ErrPINMismatch возвращается при неверном PIN
	ErrPINMismatch = errors.New("pin mismatch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
