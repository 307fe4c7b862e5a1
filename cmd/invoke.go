package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shaharia-lab/contactmail/internal/config"
	"github.com/shaharia-lab/contactmail/internal/contact"
	"github.com/shaharia-lab/contactmail/internal/logger"
)

// NewInvokeCmd returns the "invoke" subcommand that handles a single event.
func NewInvokeCmd(cfg *config.AppConfig) *cobra.Command {
	var eventFile string

	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Handle one contact form event",
		Long: `Read one event of the form {"body": "<json text>"} from --event or stdin,
handle it, and print {"statusCode": N, "headers": {...}, "body": "<json text>"}.

Examples:
  echo '{"body":"{\"name\":\"Ada\",\"email\":\"ada@example.com\",\"message\":\"Hi\"}"}' | contactmail invoke
  contactmail invoke --event event.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, closeIn, err := openEvent(cmd, eventFile)
			if err != nil {
				return err
			}
			defer closeIn()

			log, closer, err := logger.FromConfig(cfg.LogFile, cfg.SlogLevel())
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer func() { _ = closer.Close() }()

			return runInvoke(cmd, cfg, log, in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&eventFile, "event", "", `Path to the event JSON file ("-" or empty reads stdin)`)
	return cmd
}

func openEvent(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	//nolint:gosec // path is supplied by the operator
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening event file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func runInvoke(cmd *cobra.Command, cfg *config.AppConfig, log *slog.Logger, in io.Reader, out io.Writer) error {
	event, err := contact.DecodeEvent(in)
	if err != nil {
		return err
	}

	log = log.With(slog.String("invocation_id", uuid.NewString()))
	h := newContactHandler(cfg, log)
	resp := h.Handle(cmd.Context(), event.Request())

	er, err := contact.NewEventResponse(resp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	return enc.Encode(er)
}
