package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("FORMCHECK_COLOR", "never")

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate(t *testing.T) {
	t.Run("invalid form", func(t *testing.T) {
		out, _, err := execute(t, "validate", "testdata/form.yaml")
		assert.ErrorIs(t, err, errInvalidForm)
		assert.Equal(t,
			"age: must be at least 18\n"+
				"email: must be a valid email address\n"+
				"email: field is required\n",
			out)
	})

	t.Run("patched values", func(t *testing.T) {
		out, _, err := execute(t, "validate", "testdata/form.yaml", "--values", "testdata/values.yaml")
		require.NoError(t, err)
		assert.Equal(t, "valid\n", out)
	})

	t.Run("forced color", func(t *testing.T) {
		out, _, err := execute(t, "validate", "testdata/form.yaml", "--values", "testdata/values.yaml", "--color", "always")
		require.NoError(t, err)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "valid")
	})

	t.Run("missing definition", func(t *testing.T) {
		_, _, err := execute(t, "validate", "testdata/missing.yaml")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errInvalidForm)
	})

	t.Run("argument count", func(t *testing.T) {
		_, _, err := execute(t, "validate")
		assert.Error(t, err)
	})
}

func TestErrors(t *testing.T) {
	t.Run("nested", func(t *testing.T) {
		out, _, err := execute(t, "errors", "testdata/form.yaml")
		require.NoError(t, err)

		var got map[string]map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, false, got["age"]["min"])
		assert.Equal(t, 16, got["age"]["actualValue"])
		assert.EqualValues(t, 18, got["age"]["minExpected"])
		assert.Equal(t, false, got["email"]["required"])
		assert.Equal(t, false, got["email"]["isEmail"])
	})

	t.Run("flat with group validators", func(t *testing.T) {
		out, _, err := execute(t, "errors", "testdata/form.yaml", "--flat", "--self", "--values", "testdata/values.yaml")
		require.NoError(t, err)
		assert.Equal(t, "{}\n", out)
	})

	t.Run("valid tree prints null", func(t *testing.T) {
		out, _, err := execute(t, "errors", "testdata/form.yaml", "--values", "testdata/values.yaml")
		require.NoError(t, err)
		assert.Equal(t, "null\n", out)
	})
}

func TestValues(t *testing.T) {
	t.Run("whole value", func(t *testing.T) {
		out, _, err := execute(t, "values", "testdata/form.yaml", "--values", "testdata/values.yaml")
		require.NoError(t, err)
		assert.Equal(t, "age: 21\nemail: ann@example.com\ntags:\n  - go\n  - yaml\n", out)
	})

	t.Run("marked leaves", func(t *testing.T) {
		out, _, err := execute(t, "values", "testdata/form.yaml", "--mark", "touched")
		require.NoError(t, err)
		assert.Equal(t, "age: 16\ntags: []\n", out)
	})

	t.Run("selected paths", func(t *testing.T) {
		out, _, err := execute(t, "values", "testdata/form.yaml", "--paths", "tags[1],missing")
		require.NoError(t, err)
		assert.Equal(t, "missing: null\ntags:\n  - null\n  - yaml\n", out)
	})

	t.Run("invalid mark", func(t *testing.T) {
		_, _, err := execute(t, "values", "testdata/form.yaml", "--mark", "disabled")
		assert.Error(t, err)
	})
}

func TestFlatten(t *testing.T) {
	out, _, err := execute(t, "flatten", "testdata/form.yaml", "--sep", ".")
	require.NoError(t, err)
	assert.Equal(t, "age: 16\nemail: \"\"\ntags.0: go\ntags.1: yaml\n", out)
}

func TestValidators(t *testing.T) {
	out, _, err := execute(t, "validators")
	require.NoError(t, err)
	assert.Contains(t, out, "required\n")
	assert.Contains(t, out, "solveOne\n")
}

func TestSettings(t *testing.T) {
	t.Run("log level from flag", func(t *testing.T) {
		_, logs, err := execute(t, "values", "testdata/form.yaml", "--log-level", "debug")
		require.NoError(t, err)
		assert.Contains(t, logs, "component=formcheck")
		assert.Contains(t, logs, "command=values")
		assert.Contains(t, logs, `msg="form loaded"`)
	})

	t.Run("quiet by default", func(t *testing.T) {
		_, logs, err := execute(t, "values", "testdata/form.yaml")
		require.NoError(t, err)
		assert.Empty(t, logs)
	})

	t.Run("json logs from env", func(t *testing.T) {
		t.Setenv("FORMCHECK_LOG_LEVEL", "info")
		t.Setenv("FORMCHECK_LOG_FORMAT", "json")
		_, logs, err := execute(t, "values", "testdata/form.yaml")
		require.NoError(t, err)
		assert.Contains(t, logs, `"command":"values"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := execute(t, "values", "testdata/form.yaml", "--log-level", "loud")
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid color", func(t *testing.T) {
		_, _, err := execute(t, "values", "testdata/form.yaml", "--color", "sometimes")
		assert.Error(t, err)
	})

	t.Run("negative cache size", func(t *testing.T) {
		t.Setenv("FORMCHECK_PATH_CACHE_SIZE", "-1")
		_, _, err := execute(t, "values", "testdata/form.yaml")
		assert.Error(t, err)
	})

	t.Run("extra env file", func(t *testing.T) {
		t.Setenv("FORMCHECK_ENV_FILE", "testdata/extra.env")
		t.Setenv("FORMCHECK_LOG_LEVEL", "warn")
		_, logs, err := execute(t, "values", "testdata/form.yaml")
		require.NoError(t, err)
		assert.Contains(t, logs, "level=DEBUG")
	})
}

func TestRun(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("FORMCHECK_COLOR", "never")

	assert.Equal(t, exitOK, run([]string{"validators"}))
	assert.Equal(t, exitInvalid, run([]string{"validate", "testdata/form.yaml"}))
	assert.Equal(t, exitError, run([]string{"validate", "testdata/missing.yaml"}))
}
