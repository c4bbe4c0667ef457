package app

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-planconfig/internal/prompt"
)

func testConfig() *Config {
	return &Config{
		PlanType:    "dental",
		FigmaToken:  "token",
		HTTPTimeout: 5 * time.Second,
		Suggestions: 2,
		LogFormat:   "json",
		LogOutput:   "discard",
	}
}

func TestApp_New(t *testing.T) {
	scripted := &prompt.Scripted{}
	a, err := New("1.0.0", "abc123", WithConfig(testConfig()), WithPrompter(scripted))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", a.Version())
	assert.Equal(t, "abc123", a.Commit())
	assert.NotNil(t, a.Logger())
	assert.Equal(t, "dental", a.DefaultPlanType())
	assert.Same(t, scripted, a.Prompter())
}

func TestApp_InvalidOptions(t *testing.T) {
	_, err := New("dev", "", WithConfig(nil))
	require.Error(t, err)

	_, err = New("dev", "", WithPrompter(nil))
	require.Error(t, err)
}

func TestApp_FigmaClient(t *testing.T) {
	a, err := New("dev", "", WithConfig(testConfig()))
	require.NoError(t, err)

	client := a.FigmaClient()
	assert.Equal(t, "token", client.Token)
	require.NotNil(t, client.HTTP)
	assert.Equal(t, 5*time.Second, client.HTTP.Timeout)

	a.SetFigmaToken("")
	assert.Equal(t, "token", a.FigmaClient().Token)
	a.SetFigmaToken("override")
	assert.Equal(t, "override", a.FigmaClient().Token)
}

func TestApp_EngineFlags(t *testing.T) {
	a, err := New("dev", "", WithConfig(testConfig()))
	require.NoError(t, err)

	a.SetEngineFlags(-1, false)
	assert.Equal(t, 2, a.Config().Suggestions)
	assert.False(t, a.Config().OrphanChecks)

	a.SetEngineFlags(0, true)
	assert.Equal(t, 0, a.Config().Suggestions)
	assert.True(t, a.Config().OrphanChecks)
	assert.Len(t, a.EngineOptions(), 2)
}

func TestApp_ExecuteNormalize(t *testing.T) {
	a, err := New("dev", "", WithConfig(testConfig()))
	require.NoError(t, err)

	root := a.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"normalize", "--no-color", "--log-level", "debug", "Plan Size"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Equal(t, "Plan Size\tplan_size\n", out.String())
	assert.True(t, a.Config().NoColor)
	assert.Equal(t, "debug", a.Config().LogLevel)
}

func TestApp_ExecuteUnknownCommand(t *testing.T) {
	a, err := New("dev", "", WithConfig(testConfig()))
	require.NoError(t, err)
	require.Error(t, a.Execute(context.Background(), []string{"bogus"}))
}
