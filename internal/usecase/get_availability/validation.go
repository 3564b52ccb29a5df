package get_availability

import "fmt"

// MaxDays максимальный размер окна доступности
const MaxDays = 30

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Days < 1 {
		return fmt.Errorf("%w: days must be positive", ErrInvalidInput)
	}
	if req.Days > MaxDays {
		return fmt.Errorf("%w: days must not exceed %d", ErrInvalidInput, MaxDays)
	}
	return nil
}
