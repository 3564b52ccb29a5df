package domain

import "time"

// Client represents a trainer's client with a prepaid session pack
type Client struct {
	ID                int64
	Name              string
	PIN               string // 4-значный PIN для входа клиента
	SessionsRemaining int
	SessionsExpiresAt *string // "YYYY-MM-DD", NULL = без срока; информативное поле, движком не проверяется
	CreatedAt         time.Time
}

// HasSessions returns true if the client still has prepaid sessions left
func (c *Client) HasSessions() bool {
	return c.SessionsRemaining > 0
}
