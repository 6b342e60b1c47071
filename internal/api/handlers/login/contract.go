package login

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

type AuthServiceClient interface {
	Login(ctx context.Context, email, password string) (*authservice.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
