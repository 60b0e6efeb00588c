package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"site-server/core/config"
	"site-server/core/logger"
	"site-server/feature/subscribe"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var subscribeFirstName string

// subscribeCmd forwards a single subscription from the command line.
var subscribeCmd = &cobra.Command{
	Use:   "subscribe [email]",
	Short: "Subscribe an email address to the newsletter",
	Long:  `Sends one subscription to the newsletter provider using the server's configuration and API key.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubscribe(cmd.Context(), args[0], subscribeFirstName)
	},
}

func init() {
	subscribeCmd.Flags().StringVar(&subscribeFirstName, "first-name", "", "Subscriber first name")
	RootCmd.AddCommand(subscribeCmd)
}

func runSubscribe(ctx context.Context, email, firstName string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	req, err := subscribe.DefaultChain().Parse(subscribe.Input{
		Query: url.Values{"email": {email}, "first_name": {firstName}},
	})
	if err != nil {
		return err
	}

	creds := subscribe.NewCredentials(cfg.Newsletter.APIKey, cfg.Newsletter.APIKeyFile, afero.NewOsFs())
	svc := subscribe.NewService(subscribe.NewClient(cfg.Newsletter), creds, cfg.Newsletter, logg)

	err = svc.Subscribe(ctx, req)
	var upErr *subscribe.UpstreamError
	switch {
	case err == nil:
		fmt.Printf("Subscribed %s\n", req.Email)
		return nil
	case errors.As(err, &upErr):
		return fmt.Errorf("provider returned %d: %s", upErr.StatusCode, upErr.Message)
	default:
		return err
	}
}
