package create_booking

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот.
	// Час считается прошедшим с момента своего начала.
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrSlotBlocked возвращается при попытке забронировать час из
	// фиксированного заблокированного диапазона
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotTaken возвращается, когда слот уже занят upcoming бронированием
	// другого (или того же) клиента
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrDuplicateForDay возвращается, когда у клиента уже есть upcoming
	// бронирование на эту дату (не более одного занятия в день)
	ErrDuplicateForDay = errors.New("create_booking: client already has a booking on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
