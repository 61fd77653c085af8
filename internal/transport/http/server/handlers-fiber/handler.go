// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"exercise-tracker/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the HTTP API on top of the usecase layer.
type Handler struct {
	log        *zap.SugaredLogger
	uc         usecase.InterfaceUsecase
	dateLayout string
}

// NewHandler constructs an HTTP handler set; dateLayout renders response dates.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, dateLayout string) *Handler {
	return &Handler{
		log:        log.Named("http"),
		uc:         usecase,
		dateLayout: dateLayout,
	}
}
