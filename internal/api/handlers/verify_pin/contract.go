package verify_pin

import "context"

type ClientsService interface {
	VerifyPIN(ctx context.Context, clientID int64, pin string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
