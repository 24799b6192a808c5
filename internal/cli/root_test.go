package cli

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/psy/internal/doglist"
	"github.com/ytget/psy/internal/locale"
	"github.com/ytget/psy/internal/tui"
)

func TestNewRootCommand(t *testing.T) {
	t.Run("creates root command", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		assert.NotNil(t, cmd)
		assert.Equal(t, "psy", cmd.Use)
		assert.Equal(t, "1.0.0", cmd.Version)
	})

	t.Run("has gui and tui subcommands", func(t *testing.T) {
		cmd := NewRootCommand("1.0.0")
		for _, name := range []string{"gui", "tui"} {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Use)
		}
	})

	t.Run("runs gui by default", func(t *testing.T) {
		var started []string
		restore := guiRunner
		guiRunner = func(version string) { started = append(started, version) }
		defer func() { guiRunner = restore }()

		cmd := NewRootCommand("2.0.0")
		cmd.SetArgs([]string{})
		require.NoError(t, cmd.Execute())

		cmd = NewRootCommand("2.0.0")
		cmd.SetArgs([]string{"gui"})
		require.NoError(t, cmd.Execute())

		assert.Equal(t, []string{"2.0.0", "2.0.0"}, started)
	})
}

func TestNewTUICommand(t *testing.T) {
	t.Run("has config flag", func(t *testing.T) {
		cmd := NewTUICommand()
		flag := cmd.Flags().Lookup("config")
		require.NotNil(t, flag)
		assert.Equal(t, "c", flag.Shorthand)
	})

	t.Run("has lang flag", func(t *testing.T) {
		cmd := NewTUICommand()
		flag := cmd.Flags().Lookup("lang")
		require.NotNil(t, flag)
		assert.Equal(t, "l", flag.Shorthand)
	})

	t.Run("has log-file flag", func(t *testing.T) {
		cmd := NewTUICommand()
		flag := cmd.Flags().Lookup("log-file")
		require.NotNil(t, flag)
		assert.Empty(t, flag.DefValue)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		cmd := NewTUICommand()
		cmd.SetArgs([]string{"extra"})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		assert.Error(t, cmd.Execute())
	})
}

func TestTUIOptions_LoadLocalization(t *testing.T) {
	t.Run("defaults to polish", func(t *testing.T) {
		opts := &tuiOptions{configPath: filepath.Join(t.TempDir(), "settings.yaml")}

		localization, err := opts.loadLocalization()
		require.NoError(t, err)
		assert.Equal(t, locale.LanguagePolish, localization.GetCurrentLanguage())
	})

	t.Run("reads language from settings file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("app_language: en\n"), 0644))

		opts := &tuiOptions{configPath: path}
		localization, err := opts.loadLocalization()
		require.NoError(t, err)
		assert.Equal(t, locale.LanguageEnglish, localization.GetCurrentLanguage())
	})

	t.Run("lang flag overrides and is saved", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.yaml")

		opts := &tuiOptions{configPath: path, language: "en"}
		localization, err := opts.loadLocalization()
		require.NoError(t, err)
		assert.Equal(t, locale.LanguageEnglish, localization.GetCurrentLanguage())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "app_language: en")
	})

	t.Run("rejects unknown language", func(t *testing.T) {
		opts := &tuiOptions{configPath: filepath.Join(t.TempDir(), "settings.yaml"), language: "de"}

		_, err := opts.loadLocalization()
		assert.Error(t, err)
	})

	t.Run("uses config dir when no path given", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("PSY_CONFIG_DIR", dir)

		opts := &tuiOptions{language: "pl"}
		_, err := opts.loadLocalization()
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "settings.yaml"))
		assert.NoError(t, err)
	})
}

// captureLog points the standard logger at a buffer standing in for the terminal
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var terminal bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&terminal)
	t.Cleanup(func() { log.SetOutput(previous) })
	return &terminal
}

// addTwice types the same name twice so both the add and the rejection log
func addTwice(m *tui.Model, name string) {
	for i := 0; i < 2; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
}

func TestTUIOptions_RedirectLog(t *testing.T) {
	t.Run("discards log lines by default", func(t *testing.T) {
		terminal := captureLog(t)

		restore, err := (&tuiOptions{}).redirectLog()
		require.NoError(t, err)

		dogs := doglist.NewService()
		addTwice(tui.NewModel(dogs, locale.NewLocalization()), "Rex")
		dogs.Search("Re")
		restore()

		assert.Equal(t, []string{"Rex"}, dogs.CurrentView().Names())
		assert.Empty(t, terminal.String())

		log.Printf("after")
		assert.Contains(t, terminal.String(), "after")
	})

	t.Run("writes log lines to the log file", func(t *testing.T) {
		terminal := captureLog(t)
		path := filepath.Join(t.TempDir(), "psy.log")

		restore, err := (&tuiOptions{logFile: path}).redirectLog()
		require.NoError(t, err)

		addTwice(tui.NewModel(doglist.NewService(), locale.NewLocalization()), "Rex")
		restore()

		assert.Empty(t, terminal.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `Dog added: "Rex"`)
		assert.Contains(t, string(data), "Add rejected")
		assert.Empty(t, log.Prefix())
	})

	t.Run("fails for unwritable log file", func(t *testing.T) {
		captureLog(t)
		path := filepath.Join(t.TempDir(), "missing", "psy.log")

		_, err := (&tuiOptions{logFile: path}).redirectLog()
		assert.Error(t, err)
	})
}
