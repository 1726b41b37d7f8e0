package service

import (
	"context"
	"fmt"

	"gamecharge/internal/model"
	"gamecharge/internal/repository"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	games   repository.GameRepository
	options repository.PriceOptionRepository
	logger  zerolog.Logger
}

// NewCatalogService creates the catalog service.
func NewCatalogService(games repository.GameRepository, options repository.PriceOptionRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		games:   games,
		options: options,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *catalogService) GetGames(ctx context.Context) ([]model.Game, error) {
	return s.games.GetGames(ctx)
}

func (s *catalogService) GetGame(ctx context.Context, id int) (*model.Game, error) {
	game, err := s.games.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *catalogService) CreateGame(ctx context.Context, req model.CreateGameRequest) (*model.Game, error) {
	game, err := s.games.CreateGame(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("game_id", game.ID).Str("name", game.Name).Msg("game created")
	return game, nil
}

func (s *catalogService) UpdateGame(ctx context.Context, id int, req model.UpdateGameRequest) (*model.Game, error) {
	return s.games.UpdateGame(ctx, id, req)
}

func (s *catalogService) DeleteGame(ctx context.Context, id int) error {
	if err := s.games.DeleteGame(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("game_id", id).Msg("game deleted")
	return nil
}

func (s *catalogService) GetAllPriceOptions(ctx context.Context) ([]model.PriceOption, error) {
	return s.options.GetAllPriceOptions(ctx)
}

func (s *catalogService) GetPriceOptionsByGameID(ctx context.Context, gameID int) ([]model.PriceOption, error) {
	game, err := s.games.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, model.ErrGameNotFound
	}
	return s.options.GetPriceOptionsByGameID(ctx, gameID)
}

func (s *catalogService) GetPriceOption(ctx context.Context, id int) (*model.PriceOption, error) {
	option, err := s.options.GetPriceOptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, model.ErrPriceOptionNotFound
	}
	return option, nil
}

func (s *catalogService) CreatePriceOption(ctx context.Context, req model.CreatePriceOptionRequest) (*model.PriceOption, error) {
	game, err := s.games.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if game == nil {
		return nil, model.ErrGameNotFound
	}

	option, err := s.options.CreatePriceOption(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int("price_option_id", option.ID).
		Int("game_id", option.GameID).
		Msg("price option created")
	return option, nil
}

func (s *catalogService) UpdatePriceOption(ctx context.Context, id int, req model.UpdatePriceOptionRequest) (*model.PriceOption, error) {
	return s.options.UpdatePriceOption(ctx, id, req)
}

func (s *catalogService) DeletePriceOption(ctx context.Context, id int) error {
	if err := s.options.DeletePriceOption(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("price_option_id", id).Msg("price option deleted")
	return nil
}
