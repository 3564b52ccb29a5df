package delete_client

import "context"

type ClientsService interface {
	Delete(ctx context.Context, clientID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
