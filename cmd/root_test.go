package cmd

import (
	"bytes"
	"testing"

	"hellotutor/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, "8080", v.GetString("api.port"))
	assert.Equal(t, "0.0.0.0", v.GetString("api.host"))
	assert.Equal(t, config.EnvDevelopment, v.GetString("diagnostics.environment"))
	assert.Equal(t, "100ms", v.GetString("diagnostics.exit_grace_delay"))
	assert.Equal(t, "info", v.GetString("log.level"))
	assert.Equal(t, "json", v.GetString("log.format"))
}

func TestSetDefaults_ProduceValidConfig(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg *config.Config
	assert.NotPanics(t, func() { cfg = config.New(v) })
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	expected := map[string]bool{
		"serve":       false,
		"greet":       false,
		"version":     false,
		"healthcheck": false,
		"config":      false,
	}

	for _, sub := range rootCmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}

	for name, found := range expected {
		assert.True(t, found, "subcommand %s not registered", name)
	}
}

func TestVersionCommand_ShortOutput(t *testing.T) {
	out := &bytes.Buffer{}
	versionCmd.SetOut(out)
	versionShort = true
	t.Cleanup(func() { versionShort = false })

	versionCmd.Run(versionCmd, nil)

	assert.NotEmpty(t, out.String())
}
