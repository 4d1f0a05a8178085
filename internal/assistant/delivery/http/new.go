package http

import (
	"github.com/gin-gonic/gin"

	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/assistant/repository"
	"bank-policy-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l         log.Logger
	uc        assistant.UseCase
	directory repository.UserDirectory
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase, directory repository.UserDirectory) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		directory: directory,
	}
}
