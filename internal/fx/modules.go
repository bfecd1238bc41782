package fx

import (
	"database/sql"

	"go.uber.org/fx"

	"guildwar-tracker/internal/config"
	"guildwar-tracker/internal/database"
	"guildwar-tracker/internal/db"
	"guildwar-tracker/internal/logger"
	"guildwar-tracker/internal/repository"
	"guildwar-tracker/internal/server"
	"guildwar-tracker/internal/service"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewSeasonRepository),
	fx.Provide(repository.NewRosterRepository),
	fx.Provide(repository.NewBattleRepository),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewSeasonService),
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewBattleService),
	// server
	fx.Provide(server.NewServer),
)
