package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Nenad034/isplate-backend/internal/api/metrics"
	"github.com/Nenad034/isplate-backend/internal/assistant"
	"github.com/Nenad034/isplate-backend/internal/core/ports"
)

// assistantService answers questions about the dataset. When a remote model
// is configured it gets a single bounded attempt; every failure mode falls
// through silently to the local rule engine, which is total. The end user
// never sees a remote error.
type assistantService struct {
	remote ports.RemoteModel // nil when not configured
	log    zerolog.Logger
}

func NewAssistantService(remote ports.RemoteModel, log zerolog.Logger) ports.AssistantService {
	return &assistantService{remote: remote, log: log}
}

const promptTemplate = `Ti si AI asistent za aplikaciju za upravljanje isplatama, dobavljačima i hotelima.

TRENUTNI PODACI:
%s

KORISNIK PITA: %s

Odgovori KRATKO i PRECIZNO na srpskom jeziku. Koristi podatke iznad za tačan odgovor.`

func (s *assistantService) Answer(ctx context.Context, query, snapshot string) string {
	if s.remote != nil {
		data := snapshot
		if data == "" {
			data = "Nema dostupnih podataka"
		}

		answer, err := s.remote.Generate(ctx, fmt.Sprintf(promptTemplate, data, query))
		if err == nil && answer != "" {
			metrics.AssistantAnswersTotal.WithLabelValues("remote").Inc()
			return answer
		}
		if err != nil {
			s.log.Warn().Err(err).Msg("remote model unavailable, using local fallback")
		}
	}

	metrics.AssistantAnswersTotal.WithLabelValues("local").Inc()
	return assistant.LocalAnswer(query, snapshot)
}
