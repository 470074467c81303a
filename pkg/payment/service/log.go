package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const serviceName = "PaymentService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the payment Service. It logs
// method entry/exit, duration and errors. Form values like invoice IDs
// are not logged in full.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Validate(ctx context.Context, req *SubmitRequest) (resp *ValidateResponse, err error) {
	start := time.Now()

	ls.logger.Debug("Validate started",
		zap.String("service", serviceName),
		zap.String("method", "Validate"),
		zap.String("account", req.Account),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Validate failed",
				zap.String("service", serviceName),
				zap.String("method", "Validate"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Debug("Validate completed",
				zap.String("service", serviceName),
				zap.String("method", "Validate"),
				zap.Bool("valid", resp.Valid),
				zap.Int("field_errors", len(resp.Errors)),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Validate(ctx, req)
}

func (ls *logService) Send(ctx context.Context, req *SubmitRequest) (resp *SendResponse, err error) {
	start := time.Now()

	ls.logger.Info("Send started",
		zap.String("service", serviceName),
		zap.String("method", "Send"),
		zap.String("account", req.Account),
		zap.String("destination", req.Destination),
		zap.String("token_id", req.TokenID),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Send failed",
				zap.String("service", serviceName),
				zap.String("method", "Send"),
				zap.String("account", req.Account),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
		} else {
			ls.logger.Info("Send completed",
				zap.String("service", serviceName),
				zap.String("method", "Send"),
				zap.String("account", req.Account),
				zap.String("hash", resp.Hash),
				zap.String("engine_result", resp.EngineResult),
				zap.Bool("validated", resp.Validated),
				zap.Duration("duration", duration),
			)
		}
	}()

	return ls.svc.Send(ctx, req)
}
