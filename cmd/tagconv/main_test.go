package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{"at":{"$go.time":"2024-05-06T07:08:09Z"},"id":{"$go.uuid":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"},"n":1,"wait":{"$go.duration":"1m30s"}}`

// run executes tagconv with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestConvert_JSONToYAMLAndBack(t *testing.T) {
	yamlOut, err := run(t, sampleJSON, "convert", "--to", "yaml")
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "$go.time")
	assert.Contains(t, yamlOut, "2024-05-06T07:08:09Z")
	assert.Contains(t, yamlOut, "1m30s")

	jsonOut, err := run(t, yamlOut, "convert", "--from", "yaml", "--to", "json")
	require.NoError(t, err)
	assert.JSONEq(t, sampleJSON, jsonOut)
	assert.True(t, strings.HasSuffix(jsonOut, "\n"))
}

func TestConvert_BinaryFile(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"msgpack", "cbor"} {
		t.Run(format, func(t *testing.T) {
			encoded, err := run(t, sampleJSON, "convert", "-t", format)
			require.NoError(t, err)

			path := filepath.Join(dir, "doc."+format)
			require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

			back, err := run(t, "", "convert", path, "-f", format)
			require.NoError(t, err)
			assert.JSONEq(t, sampleJSON, back)
		})
	}
}

func TestConvert_Prefix(t *testing.T) {
	out, err := run(t, `{"@go.bigint":"123456789012345678901234567890"}`, "convert", "--prefix", "@")
	require.NoError(t, err)
	assert.JSONEq(t, `{"@go.bigint":"123456789012345678901234567890"}`, out)
}

func TestConvert_CategoriesLimitRegistry(t *testing.T) {
	out, err := run(t, sampleJSON, "convert", "--categories", "uuid")
	require.NoError(t, err, "unknown tags are kept as data")
	assert.JSONEq(t, sampleJSON, out)

	_, err = run(t, `{"$go.uuid":"nope"}`, "convert", "--categories", "uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore go.uuid")
}

func TestConvert_Errors(t *testing.T) {
	_, err := run(t, `{"unterminated"`, "convert")
	assert.ErrorContains(t, err, "composite: parse")

	_, err = run(t, "", "convert", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading input")

	_, err = run(t, "{}", "convert", "--from", "xml")
	assert.ErrorContains(t, err, "invalid configuration")

	_, err = run(t, "{}", "convert", "a", "b")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	out, err := run(t, sampleJSON, "inspect")
	require.NoError(t, err)

	assert.Contains(t, out, "time.Time")
	assert.Contains(t, out, "uuid.UUID")
	assert.Contains(t, out, "time.Duration")
	assert.Contains(t, out, `"wait"`)
}

func TestTags(t *testing.T) {
	out, err := run(t, "", "tags")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 11)
	assert.Contains(t, lines[0], "TAG")
	assert.Contains(t, out, "$go.time")
	assert.Contains(t, out, "time.Time")
	assert.Contains(t, out, "*big.Int")
	assert.Regexp(t, `\$go\.nan\s+equal\s+-`, out)

	out, err = run(t, "", "tags", "--categories", "bytes", "--prefix", "#")
	require.NoError(t, err)

	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `#go\.bytes\s+class\s+\[\]uint8`, lines[1])
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tagconv.yaml")

	out, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: warn")

	_, err = run(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("to: yaml\nprefix: \"%\"\n"), 0o644))

	out, err := run(t, `{"%go.duration":"2s"}`, "convert", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "%go.duration")
	assert.NotContains(t, out, "{", "written as YAML")

	out, err = run(t, `{"%go.duration":"2s"}`, "convert", "--config", path, "--to", "json")
	require.NoError(t, err, "flags win over the config file")
	assert.JSONEq(t, `{"%go.duration":"2s"}`, out)

	_, err = run(t, "{}", "convert", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorContains(t, err, "reading config")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("TAGCONV_TO", "yaml")

	out, err := run(t, `{"$go.duration":"2s"}`, "convert")
	require.NoError(t, err)
	assert.Contains(t, out, "$go.duration")
	assert.Contains(t, out, "2s")
	assert.NotContains(t, out, "{", "written as YAML")
}

func TestLogLevel(t *testing.T) {
	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(`{"$unknown.tag":1}`))
	cmd.SetArgs([]string{"convert", "--log-level", "debug"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "unknown tag kept as data")
	assert.Contains(t, errOut.String(), "converted")
}

func TestBindFlags(t *testing.T) {
	flags := newRootCmd().PersistentFlags()
	for _, name := range flagKeys {
		assert.NotNil(t, flags.Lookup(name), name)
	}

	v := viper.New()
	require.NoError(t, bindFlags(v, flags, flagKeys))
	require.NoError(t, flags.Set("to", "cbor"))
	assert.Equal(t, "cbor", v.GetString("to"))

	empty := pflag.NewFlagSet("empty", pflag.ContinueOnError)
	err := bindFlags(viper.New(), empty, map[string]string{"to": "to"})
	assert.ErrorContains(t, err, "failed to bind flag --to")
}
