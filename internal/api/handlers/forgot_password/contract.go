package forgot_password

import (
	"context"

	"github.com/m04kA/BRS-RentalGateway/internal/integrations/authservice"
)

type AuthServiceClient interface {
	ForgotPassword(ctx context.Context, email string) (*authservice.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
