package services

import (
	"context"
	"fmt"
	"log/slog"

	"command-registrar/internal/config"
	"command-registrar/internal/core/domain"
	"command-registrar/internal/core/ports"
)

type RegistrationService struct {
	client   ports.CommandClient
	reporter ports.Reporter
	command  domain.CommandDefinition
}

func NewRegistrationService(client ports.CommandClient, reporter ports.Reporter) *RegistrationService {
	return &RegistrationService{
		client:   client,
		reporter: reporter,
		command:  domain.CreateEventCommand(),
	}
}

// Register echoes the parameters, registers the guild command and reports
// whatever Discord answered. A non-2xx status is not an error.
func (s *RegistrationService) Register(ctx context.Context, cfg *config.Config) (*domain.Response, error) {
	if err := s.command.Validate(); err != nil {
		return nil, err
	}

	if err := s.reporter.ReportParameters(cfg.Token, cfg.AppID, cfg.GuildID); err != nil {
		return nil, fmt.Errorf("report parameters: %w", err)
	}

	resp, err := s.client.CreateGuildCommand(ctx, cfg.Token, cfg.AppID, cfg.GuildID, s.command)
	if err != nil {
		return nil, err
	}

	if resp.Success() {
		slog.Info("Registered command", "name", s.command.Name, "guild", cfg.GuildID, "status", resp.StatusCode)
	} else {
		slog.Warn("Discord rejected command", "name", s.command.Name, "guild", cfg.GuildID, "status", resp.StatusCode)
	}

	if err := s.reporter.ReportResponse(resp); err != nil {
		return nil, fmt.Errorf("report response: %w", err)
	}

	return resp, nil
}
