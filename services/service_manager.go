package services

import (
	"go.uber.org/zap"
)

type ServiceManager struct {
	ClassifyService ClassifyService
}

func NewServiceManager(facts FunFactFetcher, logger *zap.Logger) *ServiceManager {
	return &ServiceManager{
		ClassifyService: NewClassifyService(facts, logger),
	}
}
