package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mangatrade/internal/config"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
environment: production
logLevel: warn
http:
  addr: ":9000"
storage:
  driver: postgres
  autoMigrate: false
database:
  host: db
  name: lists
discord:
  enabled: true
  token: secret
  guildId: "1234"
lists:
  displayLimit: 10
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, ":9000", cfg.HTTP.Addr)
	require.Equal(t, config.PostgresDriver, cfg.Storage.Driver)
	require.False(t, cfg.Storage.AutoMigrate)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, "lists", cfg.Database.DatabaseName)
	require.Equal(t, "secret", cfg.Discord.Token)
	require.Equal(t, "1234", cfg.Discord.GuildID)
	require.Equal(t, 10, cfg.Lists.DisplayLimit)
	// defaults still apply to unset keys
	require.Equal(t, 30, cfg.Lists.DuplicatesDisplayLimit)
	require.Equal(t, 5*time.Second, cfg.Storage.SQLite.BusyTimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	// .env files are applied to the process environment; restore it afterwards
	for _, key := range []string{"DISCORD_TOKEN", "GUILD_ID", "SQLITE_PATH", "HTTP_ADDR", "PORT"} {
		t.Setenv(key, "")
	}
	path := writeFile(t, ".env", "DISCORD_TOKEN=abc\nGUILD_ID=42\nSQLITE_PATH=data/manga.db\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "abc", cfg.Discord.Token)
	require.Equal(t, "42", cfg.Discord.GuildID)
	require.Equal(t, "data/manga.db", cfg.Storage.SQLite.Path)
	require.Equal(t, config.SQLiteDriver, cfg.Storage.Driver)
	require.Equal(t, ":10000", cfg.HTTP.Addr)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "from-env")
	t.Setenv("LISTS_DISPLAY_LIMIT", "5")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.Discord.Token)
	require.Equal(t, 5, cfg.Lists.DisplayLimit)
	require.Equal(t, "manga.db", cfg.Storage.SQLite.Path)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeFile(t, "config.yml", "storage:\n  driver: mysql\n")
	_, err := config.Load(path)
	require.Error(t, err)

	path = writeFile(t, "config.yml", "lists:\n  displayLimit: -1\n")
	_, err = config.Load(path)
	require.Error(t, err)
}

func TestLoad_DiscordTokenOnlyRequiredByBot(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	path := writeFile(t, "config.yml", "discord:\n  enabled: true\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Discord.Enabled)
	require.Error(t, cfg.ValidateBot())

	cfg.Discord.Token = "secret"
	require.NoError(t, cfg.ValidateBot())

	cfg.Discord.Token = ""
	cfg.Discord.Enabled = false
	require.NoError(t, cfg.ValidateBot())
}

func TestLoad_HTTPAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultHTTPAddr, cfg.HTTP.Addr)

	t.Setenv("PORT", "8080")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Addr)

	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	cfg, err = config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
}
