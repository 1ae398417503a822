package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: boral
  log:
    level: debug
http:
  port: 8080
  corsOrigins:
    - http://localhost:3000
mongo:
  uri: mongodb://db:27017
  database: boral_test
  connectTimeout: 3s
secretKey:
  access: from-yaml
auth:
  bcryptCost: 4
  tokenTTL: 1h
`

func writeConfig(t *testing.T, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, sampleYAML)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, 3*time.Second, cfg.Mongo.ConnectTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, sampleYAML)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("MONGO_DATABASE", "override")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.SecretKey.Access)
	assert.Equal(t, "override", cfg.Mongo.Database)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMongoURI, cfg.Mongo.URI)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestNew_RequiresAccessSecret(t *testing.T) {
	writeConfig(t, `
http:
  port: 8080
`)
	t.Setenv("SECRETKEY_ACCESS", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secretKey.access")
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{
			"maxRequestBodySize": "10MB",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
		"rateLimit": map[string]any{
			"requestsPerSecond": 5,
		},
	}

	cases := map[string]string{
		"HTTP_MAXREQUESTBODYSIZE":     "http.maxRequestBodySize",
		"FIREBASE_CREDENTIALSPATH":    "firebase.credentialsPath",
		"QRCODE_BASEURL":              "qrcode.baseUrl",
		"RATELIMIT_REQUESTSPERSECOND": "rateLimit.requestsPerSecond",
		"METRICS__ENABLED":            "metrics.enabled",
		"MONGO_URI":                   "mongo.uri",
	}

	for envKey, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, existing), envKey)
	}
}
