package gen

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "config_partial.go", OutputName([]string{"Config", "Database"}))
	assert.Equal(t, "loggerconfig_partial.go", OutputName([]string{"LoggerConfig"}))
	assert.Equal(t, "partial.go", OutputName(nil))
}

func TestRun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		output   string
		expected string
	}{
		{name: "default output", output: "", expected: "/src/app/config_partial.go"},
		{name: "relative output", output: "zz_partials.go", expected: "/src/app/zz_partials.go"},
		{name: "absolute output", output: "/out/partials.go", expected: "/out/partials.go"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fsys := sourceFs(t, map[string]string{"app.go": appSource})

			written, err := Run(fsys, "/src/app", []string{"Config", "Database"}, testCase.output)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, written)

			src, err := afero.ReadFile(fsys, written)
			require.NoError(t, err)
			assert.Contains(t, string(src), "type ConfigPartial struct")
		})
	}
}

func TestRun_SchemaErrorWritesNothing(t *testing.T) {
	t.Parallel()

	fsys := sourceFs(t, map[string]string{
		"app.go": "package app\n\ntype Config struct {\n\tSub Sub `layer:\"nested\" default:\"x\"`\n}\n\ntype Sub struct{}\n",
	})

	_, err := Run(fsys, "/src/app", []string{"Config", "Sub"}, "")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "schema error: Config.Sub: nested fields cannot declare default or env", schemaErr.Error())

	exists, err := afero.Exists(fsys, "/src/app/config_partial.go")
	require.NoError(t, err)
	assert.False(t, exists)
}
