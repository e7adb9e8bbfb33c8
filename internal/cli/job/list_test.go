package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/shortlist/internal/cli"
	"github.com/thenoetrevino/shortlist/internal/config"
	clitest "github.com/thenoetrevino/shortlist/internal/testutil/cli"
)

func TestListJobs(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	t.Run("human readable", func(t *testing.T) {
		out, _, err := clitest.ExecuteCLICommand(t, c, ListCmd(), nil)
		require.NoError(t, err)

		assert.Contains(t, out, "[1] Software Engineer")
		assert.Contains(t, out, "[2] Product Designer")
	})

	t.Run("json", func(t *testing.T) {
		out, _, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, out)
		assert.Equal(t, true, result["success"])
		jobs := result["jobs"].([]any)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Software Engineer", jobs[0].(map[string]any)["name"])
	})

	t.Run("quiet", func(t *testing.T) {
		out, _, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)

		assert.Equal(t, "1\n2\n", out)
	})
}

func TestListJobs_ServerDown(t *testing.T) {
	cfg := config.Default()
	cfg.Client.APIURL = "http://127.0.0.1:1"
	cfg.Client.MaxRetries = 1

	_, stderr, err := clitest.ExecuteCLICommand(t, cli.New(cfg), ListCmd(), nil)

	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Contains(t, stderr, "shortlist serve")
}

func TestListJobs_NoCLI(t *testing.T) {
	cmd := ListCmd()
	cmd.SetArgs([]string{"--json"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrNoCLI)
}
