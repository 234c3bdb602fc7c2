package configs

import (
	"context"

	"github.com/golangid/candi/broker"
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/interfaces"
	"github.com/golangid/candi/config"
	"github.com/golangid/candi/config/database"
	"github.com/golangid/candi/middleware"
	"github.com/golangid/candi/validator"
)

// LoadServiceConfigs load selected dependency configuration in this service
func LoadServiceConfigs(baseCfg *config.Config) (deps dependency.Dependency) {

	loadAdditionalEnv()

	baseCfg.LoadFunc(func(ctx context.Context) []interfaces.Closer {
		brokerDeps := broker.InitBrokers(
			broker.NewKafkaBroker(),
		)
		redisDeps := database.InitRedis()
		sqlDeps := database.InitSQLDatabase()

		deps = dependency.InitDependency(
			dependency.SetMiddleware(middleware.NewMiddlewareWithOption()),
			dependency.SetValidator(validator.NewValidator()),
			dependency.SetBrokers(brokerDeps.GetBrokers()),
			dependency.SetRedisPool(redisDeps),
			dependency.SetSQLDatabase(sqlDeps),
		)
		return []interfaces.Closer{brokerDeps, redisDeps, sqlDeps}
	})

	return deps
}
