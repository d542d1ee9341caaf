package config

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minefield/internal/minefield"
)

func TestLookupDifficulty(t *testing.T) {
	d, err := LookupDifficulty("Expert")
	require.NoError(t, err)
	assert.Equal(t, minefield.Params{Width: 30, Height: 16, MineCount: 99}, d.Params)

	d, err = LookupDifficulty("beginner")
	require.NoError(t, err)
	assert.Equal(t, minefield.Params{Width: 8, Height: 8, MineCount: 10}, d.Params)

	_, err = LookupDifficulty("nightmare")
	assert.Error(t, err)

	for _, d := range Difficulties {
		assert.NoError(t, d.Validate(), d.Name)
	}
}

func TestDefaultDifficulty(t *testing.T) {
	t.Setenv("DEFAULT_DIFFICULTY", "small")
	d, err := DefaultDifficulty()
	require.NoError(t, err)
	assert.Equal(t, "small", d.Name)
}

func TestNewSession(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123")
	t.Setenv("SESSION_TTL", "90m")

	s, err := NewSession()
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789abcdef0123"), s.Secret)
	assert.Equal(t, 90*time.Minute, s.TTL)

	t.Setenv("SESSION_SECRET", "short")
	_, err = NewSession()
	assert.Error(t, err)
}

func TestNewSessionNeedsSecretUnlessDevelopment(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_SECRET_FILE", "")
	os.Unsetenv("SESSION_SECRET")
	os.Unsetenv("SESSION_SECRET_FILE")

	for _, value := range []string{"off", "no", "bogus"} {
		t.Setenv("DEVELOPMENT", value)
		_, err := NewSession()
		assert.Error(t, err, "DEVELOPMENT=%q", value)
	}

	t.Setenv("DEVELOPMENT", "true")
	s, err := NewSession()
	require.NoError(t, err)
	assert.Equal(t, []byte(developmentSecret), s.Secret)
}

func TestNewSessionFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("  file-secret-0123456789\n"), 0o600))

	os.Unsetenv("SESSION_SECRET")
	t.Setenv("SESSION_SECRET_FILE", path)
	s, err := NewSession()
	require.NoError(t, err)
	assert.Equal(t, []byte("file-secret-0123456789"), s.Secret)
	assert.Equal(t, defaultSessionTTL, s.TTL)
}

func TestNewLogFile(t *testing.T) {
	t.Setenv("LOG_FILE", "")
	lf, err := NewLogFile()
	require.NoError(t, err)
	assert.Nil(t, lf)

	t.Setenv("LOG_FILE", "/tmp/mines.log")
	t.Setenv("LOG_MAX_BACKUPS", "7")
	lf, err = NewLogFile()
	require.NoError(t, err)
	assert.Equal(t, &LogFile{Path: "/tmp/mines.log", MaxSizeMB: 50, MaxBackups: 7, MaxAgeDays: 28}, lf)

	t.Setenv("LOG_MAX_AGE_DAYS", "forever")
	_, err = NewLogFile()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ADDR=:9999\n"), 0o600))

	os.Unsetenv("APP_ADDR")
	t.Cleanup(func() { os.Unsetenv("APP_ADDR") })
	require.NoError(t, LoadDotenv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, ":9999", Addr())

	require.NoError(t, LoadDotenv(filepath.Join(dir, "missing.env")))
}

func TestDevelopment(t *testing.T) {
	for value, want := range map[string]bool{
		"": false, "0": false, "false": false,
		"no": false, "off": false, "yes": false,
		"1": true, "true": true, "TRUE": true,
	} {
		t.Setenv("DEVELOPMENT", value)
		assert.Equal(t, want, Development(), "DEVELOPMENT=%q", value)
	}
}

func TestOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")
	assert.True(t, NewOrigins().Allow("http://anything.example"))

	t.Setenv("ALLOWED_ORIGINS", " https://mines.example/ , http://localhost:5173")
	origins := NewOrigins()
	assert.Equal(t, Origins{"https://mines.example", "http://localhost:5173"}, origins)
	assert.True(t, origins.Allow("https://mines.example"))
	assert.True(t, origins.Allow("HTTP://LOCALHOST:5173"))
	assert.False(t, origins.Allow("https://evil.example"))
}

func TestWebSocketCheckOrigin(t *testing.T) {
	ws := NewWebSocket(Origins{"https://mines.example"})
	req := httptest.NewRequest(http.MethodGet, "/game/x/connect", nil)
	assert.True(t, ws.Upgrader.CheckOrigin(req), "no Origin header")

	req.Header.Set("Origin", "https://mines.example")
	assert.True(t, ws.Upgrader.CheckOrigin(req))

	req.Header.Set("Origin", "https://evil.example")
	assert.False(t, ws.Upgrader.CheckOrigin(req))
}

func TestLimits(t *testing.T) {
	os.Unsetenv("MAX_BOARD_CELLS")
	l, err := NewLimits()
	require.NoError(t, err)
	assert.Equal(t, 1<<16, l.MaxCells)

	t.Setenv("MAX_BOARD_CELLS", "480")
	l, err = NewLimits()
	require.NoError(t, err)
	assert.Equal(t, 480, l.MaxCells)

	for _, bad := range []string{"0", "-5", "lots"} {
		t.Setenv("MAX_BOARD_CELLS", bad)
		_, err = NewLimits()
		assert.Error(t, err, bad)
	}
}
