package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{
		"password", "hunter2",
		"dsn", "postgres://app:hunter2@db:5432/symbiosis?sslmode=disable",
		"industry_id", 7,
	})
	require.Len(t, out, 6)
	require.Equal(t, "[REDACTED]", out[1])
	require.Equal(t, "postgres://app:xxxxx@db:5432/symbiosis?sslmode=disable", out[3])
	require.Equal(t, 7, out[5])
}

func TestSanitizeKVsOddLength(t *testing.T) {
	out := sanitizeKVs([]interface{}{"path", "/api/industries", "dangling"})
	require.Equal(t, []interface{}{"path", "/api/industries", "dangling"}, out)
}

func TestRedactKeywordDSN(t *testing.T) {
	cases := map[string]string{
		"host=db user=app password=hunter2 dbname=symbiosis sslmode=disable": "host=db user=app password=xxxxx dbname=symbiosis sslmode=disable",
		"host=db password = 'hunter 2' dbname=symbiosis":                     "host=db password = xxxxx dbname=symbiosis",
		"PASSWORD=hunter2":                                                   "PASSWORD=xxxxx",
		"file:/tmp/registry.db?_foreign_keys=on":                             "file:/tmp/registry.db?_foreign_keys=on",
	}
	for in, want := range cases {
		require.Equal(t, want, redactDSN(in))
	}

	out := sanitizeKVs([]interface{}{"target_dsn", "host=db user=app password=hunter2 dbname=symbiosis"})
	require.NotContains(t, out[1], "hunter2")
}

func TestRedactURLQueryPassword(t *testing.T) {
	got := redactDSN("postgres://db:5432/symbiosis?password=hunter2&user=app")
	require.NotContains(t, got, "hunter2")
	require.Contains(t, got, "user=app")
}

func TestRedactDSNWithoutCredentials(t *testing.T) {
	require.Equal(t, "symbiosis.db", redactDSN("symbiosis.db"))
	require.Equal(t, "", redactDSN(""))
}

func TestNewTestModeIsSilent(t *testing.T) {
	log, err := New("test")
	require.NoError(t, err)
	log.Info("discarded", "k", "v")
	log.With("repo", "IndustryRepo").Debug("also discarded")
	require.NotNil(t, log.StdLog())
}
