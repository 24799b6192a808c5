package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ytget/psy/internal/config"
	"github.com/ytget/psy/internal/doglist"
	"github.com/ytget/psy/internal/locale"
	"github.com/ytget/psy/internal/platform"
	"github.com/ytget/psy/internal/tui"
	"github.com/ytget/psy/internal/ui"
)

// guiRunner starts the Fyne app; replaced in tests
var guiRunner = ui.Run

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "psy",
		Short:   "Psy - keep a list of your favorite dogs",
		Long:    "Psy keeps a list of dog names, lets you mark favorites and remove dogs.\nRuns as a window by default or in the terminal with 'psy tui'.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			guiRunner(version)
			return nil
		},
	}

	cmd.AddCommand(NewGUICommand(version))
	cmd.AddCommand(NewTUICommand())

	return cmd
}

// NewGUICommand creates the gui command.
func NewGUICommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the dog list window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			guiRunner(version)
			return nil
		},
	}
}

// tuiOptions holds flags of the tui command
type tuiOptions struct {
	configPath string
	language   string
	logFile    string
	altScreen  bool
}

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	opts := &tuiOptions{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the dog list in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			localization, err := opts.loadLocalization()
			if err != nil {
				return err
			}

			var programOpts []tea.ProgramOption
			if opts.altScreen {
				programOpts = append(programOpts, tea.WithAltScreen())
			}
			programOpts = append(programOpts, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))

			restoreLog, err := opts.redirectLog()
			if err != nil {
				return err
			}
			defer restoreLog()

			return tui.Run(doglist.NewService(), localization, programOpts...)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Settings file (default: user config dir)")
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "UI language (pl, en); saved to settings")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append log lines to this file (default: discard)")
	cmd.Flags().BoolVar(&opts.altScreen, "alt-screen", true, "Use the terminal alternate screen")

	return cmd
}

// redirectLog keeps log lines off the terminal while the TUI draws on it.
// The returned func restores the previous log output.
func (o *tuiOptions) redirectLog() (func(), error) {
	previousOutput := log.Writer()
	previousPrefix := log.Prefix()
	restore := func() {
		log.SetOutput(previousOutput)
		log.SetPrefix(previousPrefix)
	}

	if o.logFile == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	f, err := tea.LogToFile(o.logFile, "psy")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		f.Close()
		restore()
	}, nil
}

// loadLocalization reads settings and applies the --lang override
func (o *tuiOptions) loadLocalization() (*locale.Localization, error) {
	path := o.configPath
	if path == "" {
		defaultPath, err := platform.DefaultSettingsPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	prefs, err := config.LoadFilePreferences(path)
	if err != nil {
		return nil, err
	}
	settings := config.NewSettings(prefs)

	if o.language != "" {
		if _, ok := settings.GetLanguageOptions()[o.language]; !ok {
			return nil, fmt.Errorf("unsupported language %q", o.language)
		}
		settings.SetLanguage(o.language)
	}

	localization := locale.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())
	return localization, nil
}
