package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigValidJSON(t *testing.T) {
	path := writeTempConfig(t, `{
		"strategy": "tfidf",
		"limit": 5,
		"min_relevance": 30,
		"location": "Freetown",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tfidf", cfg.Strategy)
	assert.Equal(t, 5, cfg.Limit)
	require.NotNil(t, cfg.MinRelevance)
	assert.Equal(t, 30, *cfg.MinRelevance)
	assert.Equal(t, "Freetown", cfg.Location)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	minus := -1
	over := 150

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config", Config{}, false},
		{"valid strategy", Config{Strategy: "rule"}, false},
		{"unknown strategy", Config{Strategy: "neural"}, true},
		{"negative limit", Config{Limit: -2}, true},
		{"negative min relevance", Config{MinRelevance: &minus}, true},
		{"min relevance above 100", Config{MinRelevance: &over}, true},
		{"resume and profile together", Config{Resume: "a.txt", Profile: "b.json"}, true},
		{"missing jobs file", Config{Jobs: "/definitely/not/here.json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateExistingFiles(t *testing.T) {
	jobs := writeTempConfig(t, `[]`)
	cfg := Config{Jobs: jobs}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	ten := 10
	defaults := Config{
		Jobs:         "default-jobs.json",
		Strategy:     "rule",
		Limit:        25,
		MinRelevance: &ten,
		Location:     "Bo",
		DatabaseURL:  "postgres://localhost/jobs",
	}

	cfg := Config{Strategy: "tfidf", Limit: 5}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "default-jobs.json", merged.Jobs)
	assert.Equal(t, "tfidf", merged.Strategy)
	assert.Equal(t, 5, merged.Limit)
	require.NotNil(t, merged.MinRelevance)
	assert.Equal(t, 10, *merged.MinRelevance)
	assert.Equal(t, "Bo", merged.Location)
	assert.Equal(t, "postgres://localhost/jobs", merged.DatabaseURL)
}
