package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/contactmail/internal/config"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd(cfg *config.AppConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "contactmail",
		Short: "Contact form to email relay",
		Long: `Validate contact form submissions and forward them as plain-text email
to a fixed address. Run one event with "invoke" or host the endpoint with "serve".`,
		SilenceUsage: true,
	}

	root.AddCommand(NewInvokeCmd(cfg))
	root.AddCommand(NewServeCmd(cfg))
	root.AddCommand(NewVersionCmd())
	return root
}

// Execute loads configuration and runs the root command.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := NewRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
