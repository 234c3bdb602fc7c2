package composite

import (
	"github.com/golangid/candi/codebase/factory/dependency"
	"github.com/golangid/candi/codebase/factory/types"
	"github.com/golangid/candi/codebase/interfaces"

	"github.com/lukeintheclouds/researcher-composite/internal/modules/composite/delivery/resthandler"
	"github.com/lukeintheclouds/researcher-composite/pkg/shared/usecase"
)

const (
	// Name module name
	Name types.Module = "Composite"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(deps dependency.Dependency) *Module {
	var mod Module
	mod.restHandler = resthandler.NewRestHandler(usecase.GetSharedUsecase(), deps)

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
	return nil
}

// ServerHandler method
func (m *Module) ServerHandler(serverType types.Server) interfaces.ServerHandler {
	return nil
}

// Name get module name
func (m *Module) Name() types.Module {
	return Name
}
