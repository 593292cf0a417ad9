package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":      "",
			"database": "storefront",
		},
		"upload": map[string]any{
			"bucketUrl":  "",
			"publicPath": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "UPLOAD_BUCKETURL", want: "upload.bucketUrl"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "STORE_DRIVER", want: "store.driver"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFileValues(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: storefront
http:
  port: 8001
store:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  database: storefront
upload:
  bucketUrl: mem://
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("MONGO_DATABASE", "override")

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, 8001, cfg.HTTP.Port)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "override", cfg.Mongo.Database)
	assert.Equal(t, defaultMongoTimeout, cfg.Mongo.Timeout)
	assert.Equal(t, "mem://", cfg.Upload.BucketURL)
	assert.Equal(t, defaultPublicPath, cfg.Upload.PublicPath)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}
