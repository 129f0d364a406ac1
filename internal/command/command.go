package command

import (
	commandHandler "roster/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSetupDBHandler)

type Command struct {
	setupDBCommandHandler *commandHandler.SetupDBHandler
}

// NewCommand .
func NewCommand(
	setupDBCommandHandler *commandHandler.SetupDBHandler,
) *Command {
	return &Command{
		setupDBCommandHandler: setupDBCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "setup-db",
			Short: "ensure employee collection indexes and schema validator",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.setupDBCommandHandler.Run(cmd, args)
			},
		},
	)
}
