package db_fx

import (
	"go.uber.org/fx"

	"tripflow/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
