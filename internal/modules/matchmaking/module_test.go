package matchmaking

import (
	"testing"

	"github.com/golangid/candi/codebase/factory"
	"github.com/stretchr/testify/assert"
)

func TestModule(t *testing.T) {
	var mod Module
	assert.Implements(t, (*factory.ModuleFactory)(nil), &mod)
	assert.Equal(t, Name, mod.Name())
	assert.Nil(t, mod.GRPCHandler())
	assert.Nil(t, mod.GraphQLHandler())
	assert.Nil(t, mod.ServerHandler(""))
}
