package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/hjarta-config/config/env"
)

const source = "package app\n\ntype Config struct {\n\tPort int `default:\"8080\" env:\"PORT\"`\n}\n"

func TestCommand_UsesGOFILEDirectory(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/src/app/app.go", []byte(source), 0o644))

	var stderr bytes.Buffer

	provider := env.Map(map[string]string{"GOFILE": "/src/app/app.go", "LOG_FORMAT": "text"})

	cmd := newCommand(fsys, provider, &stderr)
	cmd.SetArgs([]string{"--type", "Config"})

	require.NoError(t, cmd.Execute())

	src, err := afero.ReadFile(fsys, "/src/app/config_partial.go")
	require.NoError(t, err)
	assert.Contains(t, string(src), "func (p ConfigPartial) Resolve() (Config, error)")
	assert.Contains(t, stderr.String(), `msg="partials written"`)
}

func TestCommand_DirAndOutputFlags(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/app.go", []byte(source), 0o644))

	cmd := newCommand(fsys, env.Map(nil), &bytes.Buffer{})
	cmd.SetArgs([]string{"--dir", "/work", "--type", "Config", "--output", "generated.go"})

	require.NoError(t, cmd.Execute())

	exists, err := afero.Exists(fsys, "/work/generated.go")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{
			name:     "missing type flag",
			args:     []string{"--dir", "/work"},
			contains: `required flag(s) "type" not set`,
		},
		{
			name:     "unknown type",
			args:     []string{"--dir", "/work", "--type", "Missing"},
			contains: "type not found",
		},
		{
			name:     "positional arguments",
			args:     []string{"--type", "Config", "extra"},
			contains: "unknown command",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fsys, "/work/app.go", []byte(source), 0o644))

			cmd := newCommand(fsys, env.Map(nil), &bytes.Buffer{})
			cmd.SetArgs(testCase.args)

			err := cmd.Execute()

			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.contains)
		})
	}
}

func TestPackageDir(t *testing.T) {
	t.Parallel()

	dir, err := packageDir(env.Map(map[string]string{"GOFILE": "app.go"}), "")
	require.NoError(t, err)
	assert.Equal(t, ".", dir)

	dir, err = packageDir(env.Map(map[string]string{"GOFILE": "pkg/app.go"}), "/explicit")
	require.NoError(t, err)
	assert.Equal(t, "/explicit", dir)

	dir, err = packageDir(env.Map(nil), "")
	require.NoError(t, err)
	assert.Equal(t, ".", dir)
}
