package ports

import (
	"context"

	"command-registrar/internal/core/domain"
)

type CommandClient interface {
	CreateGuildCommand(ctx context.Context, token, appID, guildID string, cmd domain.CommandDefinition) (*domain.Response, error)
}

type Reporter interface {
	ReportParameters(token, appID, guildID string) error
	ReportResponse(resp *domain.Response) error
}
