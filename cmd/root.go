package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/lsh/commands"
	"github.com/josephlewis42/lsh/core/config"
	"github.com/josephlewis42/lsh/core/logger"
	"github.com/josephlewis42/lsh/core/ttylog"
	"github.com/josephlewis42/lsh/core/vio"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	colorMode     string
	eventLogPath  string
	recordingPath string
)

// loadConfig builds the configuration from the built-in defaults and flags.
func loadConfig() (*config.Configuration, error) {
	configuration := config.Default(dataDir)
	if colorMode != "" {
		configuration.Color = colorMode
	}
	configuration.EventLog = eventLogPath
	configuration.Recording = recordingPath

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return configuration, nil
}

func closeLogged(logger *log.Logger, name string, c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Printf("closing %s: %v", name, err)
	}
}

// rootCmd runs the interpreter when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "A minimal interactive command interpreter.",
	Long: `lsh reads a line, splits it on whitespace and either runs one of its
builtins (cd, help, exit) or launches the named program and waits for it to
finish before prompting again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		appLog := log.New(cmd.ErrOrStderr(), "[lsh] ", 0)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var files vio.VIO = vio.NewAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		programStdin, _ := vio.File(files.Stdin())

		events := logger.NewNopLogger()
		if cfg.EventLog != "" {
			fd, err := cfg.OpenEventLog()
			if err != nil {
				return fmt.Errorf("opening event log: %w", err)
			}
			defer closeLogged(appLog, "event log", fd)
			events = logger.NewJSONLinesLogRecorder(fd)
		}

		if cfg.Recording != "" {
			fd, err := cfg.CreateRecording()
			if err != nil {
				return fmt.Errorf("creating recording: %w", err)
			}
			defer closeLogged(appLog, "recording", fd)
			files = ttylog.NewRecorder(files, ttylog.NewAsciicastLogSink(fd))
		}

		s := commands.NewShell(files, cfg, events.NewSession())
		if programStdin != nil {
			s.SetProgramStdin(programStdin)
		}
		return s.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data-dir", ".", "directory event logs and recordings are relative to")
	flags.StringVar(&colorMode, "color", "", "colorize output (always|auto|never), defaults to auto")
	flags.StringVar(&eventLogPath, "event-log", "", "append newline delimited JSON events to this file")
	rootCmd.Flags().StringVar(&recordingPath, "record", "", "record the session to this asciicast file")
}
