package handlers

import (
	"github.com/Bipul-Dubey/number-classifier/services"
)

type HandlerManager struct {
	ClassifyHandler *ClassifyHandler
	WelcomeHandler  *WelcomeHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		ClassifyHandler: NewClassifyHandler(sm.ClassifyService),
		WelcomeHandler:  NewWelcomeHandler(),
	}
}
