package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies the merge priority: earlier sources keep
// their values, later ones only fill the gaps.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{HubID: "from-env"}},
		&StructuredConfig{App: App{HubID: "from-flags", DisplayName: "Jo"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.HubID)
	assert.Equal(t, "Jo", cfg.App.DisplayName)
}

// TestBuild_RejectsNegativeTimeout verifies StructuredConfig validation.
func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HUB_ID": "env-hub"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-hub", b.configs[0].App.HubID)
}

func TestWithEnv_ErrorIsCollected(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_REFRESH_LEEWAY": "never"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_UsesBuilderArgs(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-hub", "flag-hub"}

	b.withFlags()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-hub", b.configs[0].App.HubID)
}

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder()
	b.args = []string{"-unknown"}

	b.withFlags()
	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPath_NoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_LoadsFromFirstPath(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", "app:\n  hub_id: file-hub\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ConfigFilePath: p},
		&StructuredConfig{ConfigFilePath: "/ignored.json"},
	)

	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "file-hub", b.configs[2].App.HubID)
}

func TestWithFile_Error(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/definitely/missing.json"})

	b.withFile()
	assert.Error(t, b.err)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestPipeline_DefaultsFillGaps(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_HUB_ID": "hub123"})

	b := newConfigBuilder()
	b.args = []string{"-a", "https://hubs.local", "-request-timeout", "3s"}

	cfg, err := b.withEnv().withFlags().withFile().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "hub123", cfg.App.HubID)
	assert.Equal(t, "https://hubs.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultHeartbeatInterval, cfg.Adapter.HeartbeatInterval)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultUserAgent, cfg.App.UserAgent)
	assert.Equal(t, DefaultRefreshLeeway, cfg.Workers.RefreshLeeway)

	clientCfg := newClientConfig(cfg)
	assert.NoError(t, clientCfg.validate())
}

// ── ClientConfig.validate ─────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{HubID: "hub"},
			Adapter: ClientAdapter{HTTPAddress: "https://hubs.local", RequestTimeout: time.Second, HeartbeatInterval: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "hub.db"}},
			Workers: ClientWorkers{RefreshLeeway: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "socket only", mutate: func(c *ClientConfig) {
			c.Adapter.HTTPAddress = ""
			c.Adapter.SocketAddress = "wss://hubs.local/socket"
		}},
		{name: "no hub", mutate: func(c *ClientConfig) { c.App.HubID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no heartbeat", mutate: func(c *ClientConfig) { c.Adapter.HeartbeatInterval = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative leeway", mutate: func(c *ClientConfig) { c.Workers.RefreshLeeway = -time.Second }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
