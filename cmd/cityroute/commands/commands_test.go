package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/cmd/cityroute/commands"
	"github.com/katalvlaran/cityroute/config"
	"github.com/katalvlaran/cityroute/dijkstra"
	"github.com/katalvlaran/cityroute/gen"
)

const (
	california = "testdata/california.txt"
	islands    = "testdata/islands.txt"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := commands.NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestGolden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"route_found", []string{"route", "--graph", california, "--from", "SanFrancisco", "--to", "LosAngeles"}},
		{"route_segments", []string{"route", "--graph", california, "--from", "Oakland", "--to", "Fresno", "--segments"}},
		{"route_unreachable", []string{"route", "--graph", islands, "--from", "Honolulu", "--to", "Reno"}},
		{"inspect_california", []string{"inspect", "--graph", california}},
		{"inspect_islands", []string{"inspect", "--graph", islands}},
		{"locate", []string{"locate", "--graph", california, "--x", "168", "--y", "363"}},
	}
	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := run(t, tc.args...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(stdout))
		})
	}
}

func TestRoute_Errors(t *testing.T) {
	_, _, err := run(t, "route", "--graph", california, "--from", "SanFrancisco", "--to", "Atlantis")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownNode)

	_, _, err = run(t, "route", "--from", "A", "--to", "B")
	assert.ErrorContains(t, err, "no graph file")

	_, _, err = run(t, "route", "--graph", "testdata/absent.txt", "--from", "A", "--to", "B")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "route", "--graph", california, "--from", "SanFrancisco")
	assert.ErrorContains(t, err, `required flag(s) "to" not set`)
}

func TestRoute_DebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "route", "--graph", california, "--from", "Fresno", "--to", "Fresno",
		"--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Equal(t, "path: Fresno\ncost: 0\n", stdout)
	assert.Contains(t, stderr, `"msg":"dijkstra: query done"`)
	assert.Contains(t, stderr, `"query_id":`)
}

func TestLocate_Miss(t *testing.T) {
	_, _, err := run(t, "locate", "--graph", california, "--x", "0", "--y", "0")
	assert.ErrorContains(t, err, "no city within 5 of (0, 0)")

	stdout, _, err := run(t, "locate", "--graph", california, "--x", "120", "--y", "300", "--tolerance", "10")
	require.NoError(t, err)
	assert.Equal(t, "SanFrancisco (112, 306)\n", stdout)
}

func TestGenerate_MatchesLibrary(t *testing.T) {
	stdout, _, err := run(t, "generate", "--rows", "3", "--cols", "5", "--seed", "9")
	require.NoError(t, err)

	g, err := gen.Grid(3, 5, gen.WithSeed(9))
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, gen.Write(&want, g))
	assert.Equal(t, want.String(), stdout)
}

func TestGenerate_ToFileThenRoute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.txt")
	stdout, _, err := run(t, "generate", "--rows", "2", "--cols", "2", "--jitter", "0", "--diagonal-prob", "0", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	stdout, _, err = run(t, "route", "--graph", path, "--from", "C0_0", "--to", "C1_1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "path: C0_0 -> "), stdout)
}

func TestGenerate_RejectsBadGrid(t *testing.T) {
	_, _, err := run(t, "generate", "--rows", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestConfig_PrintsLoadableYAML(t *testing.T) {
	stdout, _, err := run(t, "config", "--log-level", "debug", "--graph", california)
	require.NoError(t, err)

	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(stdout)))
	got, err := config.Load(v)
	require.NoError(t, err)

	want := config.Default()
	want.Log.Level = "debug"
	want.Graph = california
	assert.Equal(t, want, got)
}

func TestConfig_FileAndEnvLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cityroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph: "+california+"\nserver:\n  addr: :7000\n"), 0o600))
	t.Setenv("CITYROUTE_SERVER_ADDR", ":7100")

	stdout, _, err := run(t, "inspect", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "nodes: 6")

	stdout, _, err = run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "7100")
	assert.NotContains(t, stdout, "7000")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "inspect", "--graph", california, "--log-level", "chatty")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
