package configs

import (
	restserver "github.com/golangid/candi/codebase/app/rest_server"
	"github.com/golangid/candi/codebase/factory"
	"github.com/golangid/candi/codebase/factory/appfactory"
	"github.com/golangid/candi/config/env"

	"github.com/lukeintheclouds/researcher-composite/pkg/shared"
)

// InitAppFromEnvironmentConfig construct server/worker for running application from environment value
func InitAppFromEnvironmentConfig(service factory.ServiceFactory) (apps []factory.AppServerFactory) {

	if env.BaseEnv().UseKafkaConsumer {
		apps = append(apps, appfactory.SetupKafkaWorker(service))
	}
	if env.BaseEnv().UseREST {
		apps = append(apps, restserver.NewServer(service,
			restserver.SetHTTPPort(env.BaseEnv().HTTPPort),
			restserver.SetRootPath(env.BaseEnv().HTTPRootPath),
			restserver.SetDebugMode(env.BaseEnv().DebugMode),
			restserver.AddRootMiddlewares(shared.HTTPCorrelationMiddleware),
		))
	}

	return
}
