package reset_password

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

type AuthServiceClient interface {
	ResetPassword(ctx context.Context, resetToken, password string) (*authservice.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
