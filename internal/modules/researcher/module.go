package researcher

import (
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/codebase/interfaces"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/delivery/resthandler"
	"github.com/lukeintheclouds/researcher-composite/internal/modules/researcher/delivery/workerhandler"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase"
)

const (
	// Name module name
	Name types.Module = "Researcher"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler

	workerHandlers map[types.Worker]interfaces.WorkerHandler
}

// NewModule module constructor
func NewModule(deps dependency.Dependency) *Module {
	var mod Module
	mod.restHandler = resthandler.NewRestHandler(usecase.GetSharedUsecase(), deps)

	mod.workerHandlers = map[types.Worker]interfaces.WorkerHandler{
		types.Kafka: workerhandler.NewKafkaHandler(usecase.GetSharedUsecase()),
	}

	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.RESTHandler {
	return m.restHandler
}

// GRPCHandler method
func (m *Module) GRPCHandler() interfaces.GRPCHandler {
	return nil
}

// GraphQLHandler method
func (m *Module) GraphQLHandler() interfaces.GraphQLHandler {
	return nil
}

// WorkerHandler method
func (m *Module) WorkerHandler(workerType types.Worker) interfaces.WorkerHandler {
	return m.workerHandlers[workerType]
}

// ServerHandler method
func (m *Module) ServerHandler(serverType types.Server) interfaces.ServerHandler {
	return nil
}

// Name get module name
func (m *Module) Name() types.Module {
	return Name
}
