package create_booking

import (
	"fmt"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := domain.ParseDate(req.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Hour < 0 || req.Hour > 23 {
		return fmt.Errorf("%w: hour must be in range 0-23", ErrInvalidInput)
	}

	// Слоты существуют только в рабочем окне дня
	if req.Hour < domain.WorkingHourStart || req.Hour >= domain.WorkingHourEnd {
		return fmt.Errorf("%w: hour %d is outside the working window", ErrInvalidInput, req.Hour)
	}

	return nil
}
