package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/CosmoTheDev/discord-pr-notify/internal/config"
	"github.com/CosmoTheDev/discord-pr-notify/models"
	"github.com/charmbracelet/x/ansi"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type executeResult struct {
	code     int
	stdout   string
	stderr   string
	workflow string
}

// executeRoot runs the real command tree against the embedded manifest with
// a runner environment built from env. Command state is restored afterwards.
func executeRoot(t *testing.T, env map[string]string, args ...string) executeResult {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "action.yml"))
	require.NoError(t, err)
	m, err := config.ParseManifest(data)
	require.NoError(t, err)

	for _, in := range m.Inputs {
		t.Setenv(config.EnvName(in.Name), "")
	}
	t.Setenv("GITHUB_ACTIONS", env["GITHUB_ACTIONS"])

	var stdout, stderr, workflow bytes.Buffer
	prevAction, prevLogger := action, slog.Default()
	action = githubactions.New(
		githubactions.WithGetenv(func(k string) string { return env[k] }),
		githubactions.WithWriter(&workflow),
	)
	resetFlags(rootCmd)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{}, args...))
	t.Cleanup(func() {
		action = prevAction
		slog.SetDefault(prevLogger)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs([]string{})
		resetFlags(rootCmd)
	})

	code := Execute(context.Background(), data)
	return executeResult{code: code, stdout: stdout.String(), stderr: stderr.String(), workflow: workflow.String()}
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func decodeBody(t *testing.T, out string) models.MessageBody {
	t.Helper()
	var body models.MessageBody
	require.NoError(t, json.Unmarshal([]byte(out), &body), "stdout:\n%s", out)
	require.Len(t, body.Embeds, 1)
	return body
}

func TestExecuteMissingWebhookPrintsError(t *testing.T) {
	res := executeRoot(t, map[string]string{})

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Error: input required and not supplied: webhook_url\n", res.stderr)
	assert.Empty(t, res.stdout)
	assert.Empty(t, res.workflow)
}

func TestExecuteMissingWebhookInsideActions(t *testing.T) {
	res := executeRoot(t, map[string]string{"GITHUB_ACTIONS": "true"})

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.workflow, "::error::input required and not supplied: webhook_url\n")
	assert.Empty(t, res.stderr)
}

func TestExecuteRejectsUnknownFlag(t *testing.T) {
	res := executeRoot(t, map[string]string{}, "--no-such-flag")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: unknown flag: --no-such-flag")
}

func TestExecuteSendsNotification(t *testing.T) {
	srv := newHookServer(t)
	path, err := filepath.Abs(filepath.Join("testdata", "pull_request_opened.json"))
	require.NoError(t, err)

	env := map[string]string{
		"GITHUB_EVENT_NAME": "pull_request",
		"GITHUB_EVENT_PATH": path,
		"GITHUB_ACTOR":      "monalisa",
		"GITHUB_REPOSITORY": "acme/widgets",
		"GITHUB_SHA":        "abc123",
	}
	res := executeRoot(t, env, "--webhook-url", srv.URL+"/hook", "--message", "Ready for review")

	assert.Equal(t, 0, res.code, "stderr: %s", res.stderr)
	assert.Empty(t, res.stderr)
	paths, bodies := srv.received()
	assert.Equal(t, []string{"/hook"}, paths)
	require.Len(t, bodies, 1)
	require.Len(t, bodies[0].Embeds, 1)
	assert.Equal(t, "**Pull Request #7 Opened by octocat**", bodies[0].Embeds[0].Title)
	assert.Equal(t, "Ready for review", bodies[0].Embeds[0].Description)
}

func TestPreviewEventFileJSON(t *testing.T) {
	res := executeRoot(t, map[string]string{"GITHUB_SHA": "abc123"},
		"preview", "--event-file", filepath.Join("testdata", "pull_request_opened.json"), "--include-image", "--json")

	require.Equal(t, 0, res.code, "stderr: %s", res.stderr)
	body := decodeBody(t, res.stdout)
	e := body.Embeds[0]
	assert.Equal(t, "**Pull Request #7 Opened by octocat**", e.Title)
	assert.Equal(t, models.ColorOpen, e.Color)
	require.NotNil(t, e.Image)
	assert.Equal(t, "https://opengraph.githubassets.com/abc123/acme/widgets/pull/7", e.Image.URL)
}

func TestPreviewEventNameOverride(t *testing.T) {
	res := executeRoot(t, map[string]string{},
		"preview", "--event-file", filepath.Join("testdata", "pull_request_opened.json"),
		"--event-name", "push", "--include-image", "--json")

	require.Equal(t, 0, res.code, "stderr: %s", res.stderr)
	body := decodeBody(t, res.stdout)
	assert.Nil(t, body.Embeds[0].Image)
}

func TestPreviewRendersCard(t *testing.T) {
	res := executeRoot(t, map[string]string{},
		"preview", "--event-file", filepath.Join("testdata", "pull_request_opened.json"), "--username", "pr-bot")

	require.Equal(t, 0, res.code, "stderr: %s", res.stderr)
	out := ansi.Strip(res.stdout)
	assert.Contains(t, out, "pr-bot")
	assert.Contains(t, out, "Pull Request #7 Opened by octocat")
	assert.Contains(t, out, `"embeds"`)
}

func TestPreviewMissingEventFile(t *testing.T) {
	res := executeRoot(t, map[string]string{}, "preview", "--event-file", filepath.Join("testdata", "absent.json"))

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: reading event file:")
}
