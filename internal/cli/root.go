package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/config"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/engine"
)

// App holds the wired-up engine and runtime settings used by CLI commands.
type App struct {
	Engine *engine.Engine
	Config config.Config

	// IsInteractive reports whether stdin is attached to a terminal; the
	// bare root command only opens the chat shell when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "cyberbot" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cyberbot",
		Short: "Cybersecurity awareness chatbot",
		Long: `A chatbot that answers cybersecurity questions, manages reminder
tasks, and runs awareness quizzes. Run without arguments in a terminal
to open the interactive chat shell.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	registerNameFlag(root.PersistentFlags(), app)

	root.AddCommand(
		newAskCmd(app),
		newTopicsCmd(app),
		newVersionCmd(),
	)

	return root
}

// registerNameFlag binds the --name override onto a flag set. The flag
// takes precedence over the CYBERBOT_NAME environment variable.
func registerNameFlag(fs *pflag.FlagSet, app *App) {
	fs.StringVar(&app.Config.UserName, "name", app.Config.UserName,
		"display name used in replies")
}
