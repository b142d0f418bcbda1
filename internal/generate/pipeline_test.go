package generate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rn-labs/rninject/internal/catalog"
	"github.com/rn-labs/rninject/internal/generate"
	"github.com/rn-labs/rninject/internal/logging"
	"github.com/rn-labs/rninject/internal/runtime"
)

func TestPipeline_EsbuildCommonJS(t *testing.T) {
	reg, err := catalog.Default()
	require.NoError(t, err)

	g := generate.New(reg, runtime.DispatchEraser(runtime.EraserEsbuild, runtime.Options{}),
		generate.WithLogger(logging.Discard()))

	res, err := g.Generate(context.Background(), generate.Request{
		Selection:    []string{"prepareRequest", "payRequest"},
		Language:     generate.LanguageJavaScript,
		ModuleFormat: generate.ModuleCJS,
	})
	require.NoError(t, err)

	assert.NotRegexp(t, `(?m)^\s*import\s`, res.Code)
	assert.NotRegexp(t, `(?m)^\s*export\s`, res.Code)
	assert.NotContains(t, res.Code, ": string")
	assert.Contains(t, res.Code, "payRequest: processPayment")
	assert.Contains(t, res.Code, "require('@requestnetwork/request-client.js')")
	assert.True(t, strings.HasSuffix(res.Code, "module.exports = {\n  prepareRequest,\n  payRequest,\n};\n"))
}

func TestPipeline_EsbuildESMAllCapabilities(t *testing.T) {
	reg, err := catalog.Default()
	require.NoError(t, err)

	g := generate.New(reg, &runtime.EsbuildEraser{}, generate.WithLogger(logging.Discard()))
	res, err := g.Generate(context.Background(), generate.Request{
		Selection: reg.Names(),
		Language:  generate.LanguageJavaScript,
	})
	require.NoError(t, err)

	for _, name := range reg.Names() {
		assert.Regexp(t, `(?m)^export (async )?function `+name+`\(`, res.Code)
	}
	assert.NotContains(t, res.Code, "module.exports")
}
