// SPDX-FileCopyrightText: © 2021 The sml authors <https://github.com/golangee/sml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golangee/sml/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type run struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

func smlcRun(t *testing.T, stdin string, args ...string) *run {
	t.Helper()

	old := log.GetLevel()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(old)
	})

	r := &run{}
	r.err = newApp(strings.NewReader(stdin), &r.stdout, &r.stderr).Run(append([]string{"smlc"}, args...))

	return r
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestBuildYAML(t *testing.T) {
	file := writeFile(t, "page.sml", `Page { padding: "8 16" Column { Text { text: "Hello" } } }`)

	r := smlcRun(t, "", "build", file)
	require.NoError(t, r.err, r.stderr.String())

	var out []map[string]any
	require.NoError(t, yaml.Unmarshal(r.stdout.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Page", out[0]["element"])
	assert.Equal(t, "8 16", out[0]["fields"].(map[string]any)["padding"])
}

func TestBuildJSONFromStdin(t *testing.T) {
	r := smlcRun(t, `Button { label: "Go" icon: Icon { name: "next" } }`, "build", "--format", "json", "-")
	require.NoError(t, r.err, r.stderr.String())

	var out []struct {
		Element string         `json:"element"`
		Fields  map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Button", out[0].Element)
	assert.Equal(t, "Go", out[0].Fields["label"])

	icon := out[0].Fields["icon"].(map[string]any)
	assert.Equal(t, "Icon", icon["element"])
}

func TestBuildSyntaxError(t *testing.T) {
	r := smlcRun(t, "Page {\n  Column {\n}", "build", "-")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "could not parse")
}

func TestTokens(t *testing.T) {
	r := smlcRun(t, "Text { fontSize: 12.5 } // done", "tokens", "-")
	require.NoError(t, r.err)

	out := r.stdout.String()
	assert.Contains(t, out, "Float")
	assert.Contains(t, out, "12.5")
	assert.NotContains(t, out, "// done")

	r = smlcRun(t, "Text { fontSize: 12.5 } // done", "tokens", "--all", "-")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout.String(), "// done")

	r = smlcRun(t, "Text { # }", "tokens", "-")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "unexpected character")
}

func TestTree(t *testing.T) {
	r := smlcRun(t, `Row { weight: 1 Spacer {} }`, "tree", "-")
	require.NoError(t, r.err)

	out := r.stdout.String()
	assert.Contains(t, out, "Row [")
	assert.Contains(t, out, ".weight integer = 1")
	assert.Contains(t, out, "  Spacer [")
}

func TestFmt(t *testing.T) {
	r := smlcRun(t, `Row{weight:1 Unknown{x:"y"}}`, "fmt", "--indent", "\t", "-")
	require.NoError(t, r.err)
	assert.Equal(t, "Row {\n\tweight: 1\n\tUnknown {\n\t\tx: \"y\"\n\t}\n}\n", r.stdout.String())

	file := writeFile(t, "a.sml", `Spacer{amount:4}`)
	r = smlcRun(t, "", "fmt", "-w", file)
	require.NoError(t, r.err)

	buf, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "Spacer {\n    amount: 4\n}\n", string(buf))
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.sml", `Page { Text { text: "ok" } }`)
	warn := writeFile(t, "warn.sml", `Page { Spacer { weight: "big" } }`)
	bad := writeFile(t, "bad.sml", "Page {\n  Text {\n}")

	r := smlcRun(t, "", "check", good, warn)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout.String(), "2 files, 0 errors, 1 warnings")
	assert.Contains(t, r.stderr.String(), "Spacer.weight")

	r = smlcRun(t, "", "check", "--strict", good, warn)
	assert.Error(t, r.err)

	r = smlcRun(t, "", "check", good, bad)
	assert.Error(t, r.err)
	assert.Contains(t, r.stdout.String(), "2 files, 1 errors, 0 warnings")
}

func TestConfigFlag(t *testing.T) {
	cfg := writeFile(t, ".smlc.yaml", "format: json\nstrict: true\n")
	file := writeFile(t, "warn.sml", `Page { Spacer { weight: "big" } }`)

	r := smlcRun(t, "", "--config", cfg, "check", file)
	assert.Error(t, r.err)

	r = smlcRun(t, `Spacer {}`, "--config", cfg, "build", "-")
	require.NoError(t, r.err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(r.stdout.String()), "["), r.stdout.String())

	bad := writeFile(t, ".smlc.yaml", "format: xml\n")
	r = smlcRun(t, "", "--config", bad, "elements")
	assert.Error(t, r.err)
}

func TestElements(t *testing.T) {
	r := smlcRun(t, "", "elements")
	require.NoError(t, r.err)

	out := r.stdout.String()
	assert.Contains(t, out, "Text\n")
	assert.Contains(t, out, "  fontSize integer = 14")
	assert.Contains(t, out, "  icon element(Icon)")
}
