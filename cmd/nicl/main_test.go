package main //nolint:testpackage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-ni/marshaller"
)

const helloB64 = "LPJNul-wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ"

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "content")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var out, errOut bytes.Buffer

	code := run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_Text(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello")

	tests := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{
			name: "make",
			args: []string{"make", "ni:///sha-256;?q=1", hello},
			out:  "ni:///sha-256;" + helloB64 + "?q=1\n",
		},
		{
			name: "make nih",
			args: []string{"make", "nih:sha-256-32;", hello},
			out:  "nih:sha-256-32;2cf24dba;3\n",
		},
		{
			name: "check ok",
			args: []string{"check", "nih:sha-256-32;2cf24dba;3", hello},
			out:  "ok\n",
		},
		{
			name: "check digit bad",
			args: []string{"check", "nih:sha-256-32;2cf24dba;4", hello},
			code: exitMismatch,
			out:  "check digit bad\n",
		},
		{
			name: "wku",
			args: []string{"wku", "http://example.com/.well-known/ni/sha-256-32/", hello},
			out:  "http://example.com/.well-known/ni/sha-256-32/LPJNug/\n",
		},
		{
			name: "map",
			args: []string{"map", "ni://example.com/sha-256;" + helloB64},
			out:  "http://example.com/.well-known/ni/sha-256/" + helloB64 + "\n",
		},
		{
			name: "map with default authority",
			args: []string{"--authority", "example.org", "map", "ni:///sha-256-32;LPJNug"},
			out:  "http://example.org/.well-known/ni/sha-256-32/LPJNug\n",
		},
		{
			name: "convert to nih",
			args: []string{"convert", "ni:///sha-256-32;LPJNug"},
			out:  "nih:sha-256-32;2cf24dba;3\n",
		},
		{
			name: "convert to ni",
			args: []string{"convert", "nih:sha-256-32;2cf24dba;3"},
			out:  "ni:///sha-256-32;LPJNug\n",
		},
		{
			name: "digest",
			args: []string{"digest", "--chunk", "2", "sha-256", hello},
			out:  helloB64 + "\n",
		},
		{
			name: "digest from url",
			args: []string{"digest", "http://example.com/.well-known/ni/sha-256-32?x", hello},
			out:  "LPJNug\n",
		},
		{
			name: "digest expect ok",
			args: []string{"digest", "sha-256-32", hello, "--expect", "LPJNug"},
			out:  "ok\n",
		},
		{
			name: "digest expect bad",
			args: []string{"digest", "sha-256-32", hello, "--expect", "AAAAAA"},
			code: exitMismatch,
			out:  "bad\n",
		},
		{
			name: "bin",
			args: []string{"bin", "6", hello},
			out:  "062cf24dba\n",
		},
		{
			name: "bin from name",
			args: []string{"bin", "nih:6;2cf24dba;3"},
			out:  "062cf24dba\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, out, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello")
	missing := filepath.Join(t.TempDir(), "missing")

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"missing file", []string{"make", "ni:///sha-256;", missing}, "failed to read file"},
		{"malformed", []string{"make", "http://example.com/", hello}, "scheme must be ni: or nih:"},
		{"unknown algorithm", []string{"check", "ni:///md5;x", hello}, "no supported hash algorithm"},
		{"overflow", []string{"--capacity", "10", "make", "ni:///sha-256;", hello}, "exceeds capacity"},
		{"bad capacity", []string{"--capacity", "0", "algs"}, "capacity must be positive"},
		{"bad output", []string{"--output", "json", "algs"}, "unknown format"},
		{"bad spec", []string{"digest", "sha-257", hello}, "invalid algorithm spec"},
		{"bad chunk", []string{"digest", "--chunk", "0", "sha-256", hello}, "chunk must be positive"},
		{"bad suite", []string{"bin", "six", hello}, "invalid suite"},
		{"unknown suite", []string{"bin", "7", hello}, "unknown hash algorithm"},
		{"wrong args", []string{"make", "ni:///sha-256;"}, "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, out, errOut := runCLI(t, tt.args...)
			assert.Equal(t, exitError, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.err)
		})
	}
}

func TestRun_YAML(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello")

	code, out, _ := runCLI(t, "--output", "yaml", "check", "nih:sha-256-32;2cf24dbb;1", hello)
	assert.Equal(t, exitMismatch, code)
	assert.YAMLEq(t, "name: nih:sha-256-32;2cf24dbb;1\nresult: input check digit bad\n", out)

	code, out, _ = runCLI(t, "-o", "yaml", "bin", "1", hello)
	assert.Equal(t, exitOK, code)
	assert.YAMLEq(t, `algorithm: sha-256
binary: 012cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
multihash: QmRN6wdp1S2A5EtjW9A3M1vKSBuQQGcgvuhoMUoEz4iiT5
`, out)
}

func TestRun_Msgpack(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello")

	code, out, _ := runCLI(t, "--output", "msgpack", "digest", "blake2b-256-64", hello)
	require.Equal(t, exitOK, code)

	rec, err := marshaller.NewMsgpack[record]().Unmarshal([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "blake2b-256-64", rec.Algorithm)
	assert.Len(t, rec.Digest, 11)
}

func TestRun_Algs(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "algs")
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6+11)
	assert.Equal(t, "sha-256-32 (6)", lines[0])
	assert.Equal(t, "sha-256 (1)", lines[5])
	assert.Contains(t, lines, "sha3-256 (session)")

	code, out, _ = runCLI(t, "-o", "yaml", "algs")
	require.Equal(t, exitOK, code)

	rec, err := marshaller.NewYAML[algorithmsRecord]().Unmarshal([]byte(out))
	require.NoError(t, err)
	assert.Len(t, rec.Names, 6)
	assert.Equal(t, algorithmRecord{Token: "sha-256", Suite: 1, Bits: 256}, rec.Names[5])
}

func TestRun_Debug(t *testing.T) {
	t.Parallel()

	hello := writeFile(t, "hello")

	code, _, errOut := runCLI(t, "--debug", "make", "nih:3", hello)
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut, "name made")

	code, _, errOut = runCLI(t, "make", "nih:3", hello)
	require.Equal(t, exitOK, code)
	assert.Empty(t, errOut)
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	config := filepath.Join(t.TempDir(), "nicl.yaml")
	require.NoError(t, os.WriteFile(config, []byte("authority: example.net\noutput: yaml\n"), 0o600))

	code, out, _ := runCLI(t, "--config", config, "map", "ni:///sha-256-32;LPJNug")
	require.Equal(t, exitOK, code)
	assert.YAMLEq(t, `name: ni:///sha-256-32;LPJNug
url: http://example.net/.well-known/ni/sha-256-32/LPJNug
`, out)

	code, _, errOut := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "algs")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "failed to read config")
}

func TestRun_Env(t *testing.T) { //nolint:paralleltest // Uses t.Setenv.
	t.Setenv("NICL_AUTHORITY", "env.example")
	t.Setenv("NICL_OUTPUT", "yaml")

	code, out, _ := runCLI(t, "map", "ni:///sha-256-32;LPJNug")
	require.Equal(t, exitOK, code)
	assert.YAMLEq(t, `name: ni:///sha-256-32;LPJNug
url: http://env.example/.well-known/ni/sha-256-32/LPJNug
`, out)

	code, out, _ = runCLI(t, "--output", "text", "map", "ni:///sha-256-32;LPJNug")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "http://env.example/.well-known/ni/sha-256-32/LPJNug\n", out)
}
