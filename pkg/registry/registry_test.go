package registry_test

import (
	"testing"

	"github.com/aretw0/twoway/pkg/domain"
	"github.com/aretw0/twoway/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(domain.Program{Name: "zeta"})
	r.Register(domain.Program{Name: "alpha", Summary: "first"})
	r.Register(domain.Program{Name: "alpha", Summary: "second"})

	assert.Equal(t, []string{"alpha", "zeta"}, r.Names())

	p, err := r.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "second", p.Summary, "Register should overwrite")

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, registry.ErrUnknownProgram)
	assert.Contains(t, err.Error(), `"missing"`)
}
