package cli

import (
	"bytes"
	"context"
	"delivery-thermal-service/internal/api/dto"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "--product", "1", "--packaging", "2", "--transport", "1", "--distance", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Café")
	assert.Contains(t, out, "Final temperature: 66.6°C")
	assert.Contains(t, out, "Satisfaction:      5/10")
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "-p", "17", "-k", "1", "-t", "4", "-d", "5", "-o", "json")
	require.NoError(t, err)

	var res dto.SimulationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Helado", res.Input.Product)
	assert.InDelta(t, 0.05, res.Score.TimeScore, 1e-12)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := execute(t, "run", "-o", "yaml")
	assert.ErrorContains(t, err, "unsupported output")

	_, err = execute(t, "run", "--distance=-3")
	assert.ErrorContains(t, err, "distance")

	_, err = execute(t, "run", "-p", "99")
	assert.ErrorContains(t, err, "product 99 not found")
}

func TestCatalog(t *testing.T) {
	out, err := execute(t, "catalog")
	require.NoError(t, err)

	assert.Contains(t, out, "Helado")
	assert.Contains(t, out, "Vaso térmico")
	assert.Contains(t, out, "walking")
	assert.Contains(t, out, "N/A")
}

func TestCatalogFromSeedFile(t *testing.T) {
	seed := `
products:
  - product_id: 1
    name: Caldo
    category: comida_caliente
    volume_l: 0.4
    initial_temp_c: 90
packagings:
  - packaging_id: 1
    name: Termo
    u_value: 2
transports:
  - transport_id: 1
    name: Patineta
    speed_kmh: 12
    mode: bicycle
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o600))

	out, err := execute(t, "--seed", path, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "Caldo")
	assert.NotContains(t, out, "Helado")

	out, err = execute(t, "--seed", path, "run", "-p", "1", "-k", "1", "-t", "1", "-d", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Patineta")
}

func TestProfile(t *testing.T) {
	out, err := execute(t, "profile", "-p", "1", "-k", "2", "-t", "1", "-d", "5", "--points", "4")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[1], "85.0°C")

	_, err = execute(t, "profile", "--points", "1")
	assert.Error(t, err)
}
