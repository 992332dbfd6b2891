package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/sketch"
	"github.com/vdobler/sketch/experiment"
	"github.com/vdobler/sketch/internal/document"
)

// run executes sketchplot with args and returns what it printed on stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// triangle writes a function with samples (0,0) (1,1) (2,0.5) and scale
// [0,1] to dir.
func triangle(t *testing.T, dir string) string {
	t.Helper()
	fn := sketch.NewFunction("triangle", sketch.Drawing)
	fn.Scale = sketch.Interval{Min: 0, Max: 1}
	fn.SetDatapoints(sketch.NewDatapoints([]sketch.Datapoint{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0.5}}))
	path := filepath.Join(dir, "triangle.json")
	require.NoError(t, document.Save(path, fn))
	return path
}

var surfaceArgs = []string{"--width", "100", "--height", "50", "--left", "0", "--right", "2"}

func TestPath(t *testing.T) {
	file := triangle(t, t.TempDir())
	out, err := run(t, append([]string{"path", file}, surfaceArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "M 0 50 50 0 100 25\n", out)
}

func TestPathDegenerate(t *testing.T) {
	file := triangle(t, t.TempDir())
	_, err := run(t, "path", file, "--left", "1", "--right", "1")
	assert.ErrorIs(t, err, sketch.ErrDegenerateBounds)

	_, err = run(t, "path", file, "--width", "0")
	assert.ErrorIs(t, err, sketch.ErrInvalidSize)
}

// meanEntry is one entry of the mean command output.
type meanEntry struct {
	Name    string   `json:"name" toml:"name"`
	Defined bool     `json:"defined" toml:"defined"`
	Mean    *float64 `json:"mean" toml:"mean"`
	Error   string   `json:"error" toml:"error"`
}

// saveFunction writes a function named name with samples values to dir/file.
func saveFunction(t *testing.T, dir, file, name string, values ...sketch.Datapoint) string {
	t.Helper()
	fn := sketch.NewFunction(name, sketch.Drawing)
	fn.SetDatapoints(sketch.NewDatapoints(values))
	path := filepath.Join(dir, file)
	require.NoError(t, document.Save(path, fn))
	return path
}

func TestMean(t *testing.T) {
	file := triangle(t, t.TempDir())
	out, err := run(t, "mean", file)
	require.NoError(t, err)

	var result map[string]meanEntry
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Contains(t, result, file)
	assert.Equal(t, "triangle", result[file].Name)
	assert.True(t, result[file].Defined)
	require.NotNil(t, result[file].Mean)
	assert.InDelta(t, 2/1.5, *result[file].Mean, 1e-12)
}

func TestMeanSameName(t *testing.T) {
	dir := t.TempDir()
	a := saveFunction(t, dir, "a.json", "a", sketch.Datapoint{X: 1, Y: 1})
	b := saveFunction(t, dir, "b.json", "a", sketch.Datapoint{X: 7, Y: 2})

	out, err := run(t, "mean", a, b)
	require.NoError(t, err)
	var result map[string]meanEntry
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result, 2)
	require.NotNil(t, result[a].Mean)
	require.NotNil(t, result[b].Mean)
	assert.InDelta(t, 1, *result[a].Mean, 1e-12)
	assert.InDelta(t, 7, *result[b].Mean, 1e-12)
}

func TestMeanUndefined(t *testing.T) {
	dir := t.TempDir()
	flat := saveFunction(t, dir, "flat.json", "flat",
		sketch.Datapoint{X: 0, Y: 1}, sketch.Datapoint{X: 1, Y: -1})

	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			out, err := run(t, "mean", flat, "--format", format)
			require.NoError(t, err)
			assert.Contains(t, out, "flat")
			assert.Contains(t, out, "defined")
			assert.Contains(t, out, sketch.ErrZeroTotal.Error())
		})
	}

	out, err := run(t, "mean", flat, "--format", "toml")
	require.NoError(t, err)
	var result map[string]meanEntry
	require.NoError(t, toml.Unmarshal([]byte(out), &result))
	require.Contains(t, result, flat)
	assert.False(t, result[flat].Defined)
	assert.Nil(t, result[flat].Mean)
	assert.Equal(t, sketch.ErrZeroTotal.Error(), result[flat].Error)
}

func TestInvalidFormat(t *testing.T) {
	file := triangle(t, t.TempDir())
	for _, args := range [][]string{
		{"mean", file, "--format", "xml"},
		{"version", "--format", "xml"},
		{"sample", "line", "--format", "xml"},
	} {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, document.ErrFormat, "%v", args)
	}
}

func TestSample(t *testing.T) {
	out, err := run(t, "sample", "line", "--left", "0", "--right", "1", "--resolution", "4", "--format", "yaml")
	require.NoError(t, err)

	fn, err := document.Decode(strings.NewReader(out), document.YAML)
	require.NoError(t, err)
	assert.Equal(t, "line", fn.Name)
	assert.Equal(t, sketch.Formula, fn.Mode)
	require.NotNil(t, fn.Datapoints)
	assert.Equal(t, []sketch.Datapoint{
		{X: 0, Y: 0}, {X: 0.25, Y: 0.25}, {X: 0.5, Y: 0.5}, {X: 0.75, Y: 0.75},
	}, fn.Datapoints.Values)

	_, err = run(t, "sample", "spiral")
	assert.Error(t, err)
	_, err = run(t, "sample", "line", "--resolution", "0")
	assert.Error(t, err)
}

func TestRenderRaw(t *testing.T) {
	file := triangle(t, t.TempDir())
	out, err := run(t, append([]string{"render", file, "--raw"}, surfaceArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `d="M 0 50 50 0 100 25"`)
}

func TestRenderRawFractionalSize(t *testing.T) {
	file := triangle(t, t.TempDir())
	out, err := run(t, "render", file, "--raw", "--width", "100.5", "--height", "50.25", "--left", "0", "--right", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `width="101"`)
	assert.Contains(t, out, `height="51"`)
	assert.Contains(t, out, `d="M 0 50.25 50.25 0 100.5 25.125"`)
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	file := triangle(t, dir)

	svgFile := filepath.Join(dir, "out.svg")
	_, err := run(t, "render", file, "-o", svgFile)
	require.NoError(t, err)
	b, err := os.ReadFile(svgFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")

	pngFile := filepath.Join(dir, "out.png")
	_, err = run(t, "render", file, "-o", pngFile)
	require.NoError(t, err)
	b, err = os.ReadFile(pngFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))

	stacked := filepath.Join(dir, "stacked.svg")
	_, err = run(t, "render", file, file, "--stack", "-o", stacked)
	require.NoError(t, err)
	assert.FileExists(t, stacked)

	_, err = run(t, "render", file, "-o", filepath.Join(dir, "out.gif"))
	assert.Error(t, err)
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	grid := []string{"--left", "-3", "--right", "3", "--resolution", "40"}
	pot := filepath.Join(dir, "pot.json")
	wave := filepath.Join(dir, "wave.yaml")
	_, err := run(t, append([]string{"sample", "zero", "-o", pot}, grid...)...)
	require.NoError(t, err)
	_, err = run(t, append([]string{"sample", "gauss", "-o", wave}, grid...)...)
	require.NoError(t, err)

	out, err := run(t, "simulate", pot, wave, "--left", "-3", "--right", "3", "--time", "0")
	require.NoError(t, err)
	fn, err := document.Decode(strings.NewReader(out), document.JSON)
	require.NoError(t, err)
	require.NotNil(t, fn.Datapoints)
	assert.Equal(t, 40, fn.Datapoints.Len())
	assert.True(t, fn.ReadOnly)
	sum := 0.0
	for _, p := range fn.Datapoints.Values {
		sum += p.Y
	}
	assert.InDelta(t, 1, sum, 1e-3)

	out, err = run(t, "simulate", pot, wave, "--eigenvector", "0", "--format", "toml")
	require.NoError(t, err)
	fn, err = document.Decode(strings.NewReader(out), document.TOML)
	require.NoError(t, err)
	require.NotNil(t, fn.N)
	assert.Equal(t, 0, *fn.N)

	_, err = run(t, "simulate", pot, wave, "--eigenvector", "40")
	assert.ErrorIs(t, err, experiment.ErrModeRange)
}

func TestMigrateCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(in, []byte(`{
		"name": "old",
		"mode": "drawing",
		"scale": {"top": 4, "bottom": -4},
		"datapoints": {"values": [{"x": 1, "y": 2}]}
	}`), 0o644))
	out := filepath.Join(dir, "new.yaml")

	stdout, err := run(t, "migrate", in, out)
	require.NoError(t, err)
	assert.Equal(t, out+"\n", stdout)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "top")

	fn, err := document.Load(out)
	require.NoError(t, err)
	assert.Equal(t, sketch.Interval{Min: -4, Max: 4}, fn.Scale)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "version: dev")
}
