package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/domain"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/engine"
	"github.com/MndebeleMhlengi/ST10384345-PROG6221POE/internal/nlp"
)

// newAskCmd creates the one-shot "ask" command: a single chat turn without
// opening the shell.
func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message...>",
		Short: "Send one message to the bot and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name := strings.TrimSpace(app.Config.UserName); name != "" {
				app.Engine.SetUserName(name)
			}

			input := strings.Join(args, " ")

			// Slot-filled task intents skip the multi-turn wizard; the
			// extractor already pulled out title, description and date.
			intent := nlp.Classify(input, time.Now())
			var reply string
			if intent.Type == domain.IntentAddTask && intent.TaskTitle != "" {
				reply = app.Engine.QuickAddTask(intent.TaskTitle, intent.TaskDescription, intent.ReminderAt)
			} else {
				reply = app.Engine.HandleInput(input)
				if reply == engine.ExitSentinel {
					// "ask exit" prints the farewell already in history.
					reply = app.Engine.LatestMessage()
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}
