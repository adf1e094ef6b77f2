package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordfreq-go/internal/chart"
	"wordfreq-go/internal/errs"
	"wordfreq-go/internal/segment"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordfreq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.MinFreq)
	assert.Equal(t, 20, cfg.TopN)
	assert.Equal(t, SegmenterDict, cfg.Segmenter)
	assert.Equal(t, "utf-8", cfg.Fetch.Charset)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
stopwords: ["的", "了"]
extra_stopwords: ["技术"]
min_freq: 3
top_n: 10
chart: 柱状图
segmenter: dict
script_ranges: ["4e00-9fff", "3400-4dbf"]
fetch:
  charset: gbk
  timeout: 3s
  respect_robots: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.MinFreq)
	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "gbk", cfg.Fetch.Charset)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.Fetch.RespectRobots)
	// untouched fields keep defaults
	assert.Equal(t, "wordfreq-go/0.1", cfg.Fetch.UserAgent)

	kind, err := cfg.ChartKind()
	require.NoError(t, err)
	assert.Equal(t, chart.Bar, kind)

	stops := cfg.StopwordSet()
	assert.Equal(t, 3, stops.Len())
	assert.True(t, stops.Contains("技术"))
	assert.False(t, stops.Contains("我们"))

	script, err := cfg.Script()
	require.NoError(t, err)
	assert.True(t, script.Contains('㐀'))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "min_freq: [unclosed"))
	assert.Error(t, err)
}

func TestStopwordSet_DefaultWhenUnset(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 21, cfg.StopwordSet().Len())

	cfg.Stopwords = []string{}
	assert.Equal(t, 0, cfg.StopwordSet().Len())
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		"WORDFREQ_MIN_FREQ":       "5",
		"WORDFREQ_TOP_N":          "7",
		"WORDFREQ_CHART":          "radar",
		"WORDFREQ_TIMEOUT":        "2s",
		"WORDFREQ_RESPECT_ROBOTS": "true",
		"WORDFREQ_STOPWORDS":      "的, 了 ,,是",
		"WORDFREQ_SEGMENTER":      "",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.MinFreq)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, "radar", cfg.Chart)
	assert.Equal(t, 2*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.Fetch.RespectRobots)
	assert.Equal(t, []string{"的", "了", "是"}, cfg.Stopwords)
	assert.Equal(t, SegmenterDict, cfg.Segmenter)
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, env := range []map[string]string{
		{"WORDFREQ_MIN_FREQ": "two"},
		{"WORDFREQ_TIMEOUT": "soon"},
		{"WORDFREQ_RESPECT_ROBOTS": "maybe"},
	} {
		err := Default().ApplyEnv(envMap(env))
		assert.ErrorIs(t, err, errs.ErrInvalidArgument, env)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min_freq zero", func(c *Config) { c.MinFreq = 0 }},
		{"negative top_n", func(c *Config) { c.TopN = -1 }},
		{"min_runes zero", func(c *Config) { c.MinRunes = 0 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"bad chart", func(c *Config) { c.Chart = "histogram" }},
		{"bad segmenter", func(c *Config) { c.Segmenter = "hmm" }},
		{"bad range", func(c *Config) { c.ScriptRanges = []string{"nope"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), errs.ErrInvalidArgument)
		})
	}
}

func TestComponents(t *testing.T) {
	dictPath := filepath.Join(t.TempDir(), "user.txt")
	require.NoError(t, os.WriteFile(dictPath, []byte("猫狗大战 5000\n"), 0o644))

	cfg := Default()
	cfg.DictPaths = []string{dictPath}

	comp, err := cfg.Components(nil)
	require.NoError(t, err)
	require.NotNil(t, comp.Fetcher)
	require.NotNil(t, comp.Cleaner)
	require.NotNil(t, comp.Filter)
	assert.IsType(t, &segment.DictSegmenter{}, comp.Segmenter)

	assert.Equal(t, []string{"猫狗大战"}, comp.Segmenter.Segment("猫狗大战"))
}

func TestComponents_Errors(t *testing.T) {
	cfg := Default()
	cfg.DictPaths = []string{filepath.Join(t.TempDir(), "missing.txt")}
	_, err := cfg.Components(nil)
	assert.Error(t, err)

	cfg = Default()
	cfg.Fetch.Charset = "klingon-8"
	_, err = cfg.Components(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	cfg = Default()
	cfg.MinFreq = 0
	_, err = cfg.Components(nil)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}
