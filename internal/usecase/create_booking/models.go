package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ClientID int64  // ID клиента
	Date     string // Дата бронирования "YYYY-MM-DD"
	Hour     int    // Час начала слота, 0-23
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ClientID  int64
	Date      string
	Hour      int
	Status    string
	CreatedAt time.Time
}
