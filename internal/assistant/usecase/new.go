package usecase

import (
	"bank-policy-assistant/internal/assistant"
	"bank-policy-assistant/internal/assistant/repository"
	"bank-policy-assistant/internal/router"
	pkgLog "bank-policy-assistant/pkg/log"
	"bank-policy-assistant/pkg/llmprovider"
)

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	retriever repository.Retriever
	reranker  repository.Reranker
	directory repository.UserDirectory
	llm       *llmprovider.Manager
	cfg       assistant.Config
}

// New creates a new assistant UseCase instance. reranker may be nil
// when reranking is disabled in config.
func New(
	l pkgLog.Logger,
	rt router.Router,
	retriever repository.Retriever,
	reranker repository.Reranker,
	directory repository.UserDirectory,
	llm *llmprovider.Manager,
	cfg assistant.Config,
) *implUseCase {
	return &implUseCase{
		l:         l,
		router:    rt,
		retriever: retriever,
		reranker:  reranker,
		directory: directory,
		llm:       llm,
		cfg:       cfg,
	}
}
