package services

import (
	"context"
	"errors"

	"github.com/Bipul-Dubey/number-classifier/config"
	"github.com/Bipul-Dubey/number-classifier/models"
	"go.uber.org/zap"
)

const (
	FunFactUnavailable = "No fun fact available"
	FunFactTimeout     = "No fun fact available (timeout)"
	FunFactError       = "No fun fact available (error)"
)

// FunFactFetcher looks up a trivia fact for a number.
type FunFactFetcher interface {
	MathFact(ctx context.Context, n int64) (string, error)
}

type ClassifyService interface {
	Classify(ctx context.Context, n int64) *models.ClassifyResponse
}

type classifyService struct {
	facts  FunFactFetcher
	logger *zap.Logger
}

func NewClassifyService(facts FunFactFetcher, logger *zap.Logger) ClassifyService {
	return &classifyService{
		facts:  facts,
		logger: logger,
	}
}

func (s *classifyService) Classify(ctx context.Context, n int64) *models.ClassifyResponse {
	return &models.ClassifyResponse{
		Number:     n,
		IsPrime:    IsPrime(n),
		IsPerfect:  IsPerfect(n),
		Properties: Properties(n),
		DigitSum:   DigitSum(n),
		FunFact:    s.funFact(ctx, n),
	}
}

// funFact never fails: lookup errors degrade to a fallback string.
func (s *classifyService) funFact(ctx context.Context, n int64) string {
	if s.facts == nil {
		return FunFactUnavailable
	}

	fact, err := s.facts.MathFact(ctx, n)
	switch {
	case err == nil:
		return fact
	case errors.Is(err, config.ErrFunFactMissing):
		return FunFactUnavailable
	case errors.Is(err, config.ErrUnexpectedStatus):
		s.logger.Warn("Numbers API returned no fun fact", zap.Int64("number", n), zap.Error(err))
		return FunFactUnavailable
	case errors.Is(err, config.ErrFunFactTimeout):
		s.logger.Error("Timeout occurred while fetching fun fact", zap.Int64("number", n))
		return FunFactTimeout
	default:
		s.logger.Error("Failed to fetch fun fact", zap.Int64("number", n), zap.Error(err))
		return FunFactError
	}
}
