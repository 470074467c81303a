package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const serviceName = "IssuanceService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the issuance Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Create(ctx context.Context, req *CreateSubmitRequest) (*SubmitResponse, error) {
	return ls.logCall(ctx, "Create", req.Account, func(ctx context.Context) (*SubmitResponse, error) {
		return ls.svc.Create(ctx, req)
	})
}

func (ls *logService) Authorize(ctx context.Context, req *AuthorizeSubmitRequest) (*SubmitResponse, error) {
	return ls.logCall(ctx, "Authorize", req.Account, func(ctx context.Context) (*SubmitResponse, error) {
		return ls.svc.Authorize(ctx, req)
	})
}

func (ls *logService) Destroy(ctx context.Context, req *DestroySubmitRequest) (*SubmitResponse, error) {
	return ls.logCall(ctx, "Destroy", req.Account, func(ctx context.Context) (*SubmitResponse, error) {
		return ls.svc.Destroy(ctx, req)
	})
}

func (ls *logService) logCall(
	ctx context.Context,
	method string,
	account string,
	call func(context.Context) (*SubmitResponse, error),
) (*SubmitResponse, error) {
	start := time.Now()

	ls.logger.Info(method+" started",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("account", account),
	)

	resp, err := call(ctx)
	duration := time.Since(start)

	if err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.String("account", account),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	ls.logger.Info(method+" completed",
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("account", account),
		zap.String("hash", resp.Hash),
		zap.String("engine_result", resp.EngineResult),
		zap.Duration("duration", duration),
	)
	return resp, nil
}
