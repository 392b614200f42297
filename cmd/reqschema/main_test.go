package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqschema/pkg/config"
	"github.com/dmitrymomot/reqschema/pkg/logger"
	"github.com/dmitrymomot/reqschema/pkg/schema"
)

var envKeys = []string{
	"APP_ENV", "SERVICE_NAME", "HTTP_ADDR", "LOG_LEVEL", "LOG_FORMAT",
	"CATALOG_FILE", "MAX_BODY_BYTES", "SHUTDOWN_TIMEOUT",
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("LOG_LEVEL", "error")

	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, `{"name":" Energia ","code":"EN-01"}`, "validate", "category", "create")
	require.NoError(t, err)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "Energia", body.Data["name"])
}

func TestValidateCommandRejects(t *testing.T) {
	out, err := run(t, `{"subcategoryIds":[1,1],"action":"explode"}`, "validate", "subcategory", "bulk-action", "-")
	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, `"duplicate_in_sequence"`)
	assert.Contains(t, out, `"not_in_allowed_set"`)
}

func TestValidateCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Acme"}`), 0o600))

	out, err := run(t, "", "validate", "--catalog", "testdata/supplier.yaml", "supplier", "create", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"paymentDays": 30`)
}

func TestValidateCommandHidesWriteOnlyFields(t *testing.T) {
	payload := `{"platformName":"Enel portal","platformType":"gas","accessData":{"username":"acme","password":"s3cret"},"companyId":4}`
	out, err := run(t, payload, "validate", "scraper_access", "create")
	require.NoError(t, err)
	assert.Contains(t, out, `"platformName": "Enel portal"`)
	assert.NotContains(t, out, "accessData")
	assert.NotContains(t, out, "s3cret")
}

func TestValidateCommandProjectsOutput(t *testing.T) {
	out, err := run(t, `{"id":3,"name":"Gas","accessData":{}}`, "validate", "category", "output")
	require.NoError(t, err)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.EqualValues(t, 3, body.Data["id"])
	assert.NotContains(t, body.Data, "accessData")
	assert.Contains(t, body.Data, "createdAt")

	_, err = run(t, `[1]`, "validate", "category", "stats")
	assert.ErrorContains(t, err, "JSON object")
}

func TestValidateCommandErrors(t *testing.T) {
	_, err := run(t, `{}`, "validate", "invoice", "create")
	assert.ErrorIs(t, err, schema.ErrUnknownEntity)

	_, err = run(t, `{"name":`, "validate", "category", "create")
	assert.ErrorContains(t, err, "decode payload")

	_, err = run(t, ``, "validate", "category")
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "", "describe")
	require.NoError(t, err)
	assert.Contains(t, out, "- category\n")
	assert.Contains(t, out, "- scraper_access\n")

	out, err = run(t, "", "describe", "property_type", "--format", "json")
	require.NoError(t, err)
	var doc struct {
		Entity   string                       `json:"entity"`
		Variants map[string][]schema.FieldDoc `json:"variants"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "property_type", doc.Entity)
	assert.Contains(t, doc.Variants, "bulk_action")

	out, err = run(t, "", "describe", "category")
	require.NoError(t, err)
	assert.Contains(t, out, "entity: category")
	assert.Contains(t, out, "code: not_in_allowed_set")

	_, err = run(t, "", "describe", "category", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestInvalidConfig(t *testing.T) {
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	t.Setenv("LOG_FORMAT", "xml")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"describe"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalidConfig)
}

func TestReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalogs.yaml")
	a := &app{cfg: config.Config{CatalogFile: path}, log: logger.Discard()}
	require.NoError(t, os.WriteFile(path, []byte("catalogs: []\n"), 0o600))

	reg, err := a.registry()
	require.NoError(t, err)
	assert.NotContains(t, reg.Entities(), "supplier")

	data, err := os.ReadFile("testdata/supplier.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	a.reload(reg)
	assert.Contains(t, reg.Entities(), "supplier")

	require.NoError(t, os.WriteFile(path, []byte("catalogs: [{entity: ''}]\n"), 0o600))
	a.reload(reg)
	assert.Contains(t, reg.Entities(), "supplier", "broken file keeps the running set")
}

func TestServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	a := &app{
		cfg: config.Config{
			HTTPAddr:        "127.0.0.1:0",
			MaxBodyBytes:    1024,
			ShutdownTimeout: time.Second,
		},
		log: logger.Discard(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.NoError(t, a.serve(ctx))
}
