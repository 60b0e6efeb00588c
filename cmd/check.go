package cmd

import (
	"context"
	"fmt"

	"site-server/core/config"
	"site-server/feature/static"
	"site-server/feature/subscribe"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// checkCmd verifies that the configured site and API key are usable.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the static site and newsletter API key",
	Long:  `Verifies that the default document and success page exist in the static source and that an API key can be resolved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source, err := newStaticSource(cfg)
	if err != nil {
		return err
	}

	missing, err := static.CheckRequired(ctx, source, static.RequiredFiles(cfg.Static.DefaultDocument, cfg.Newsletter.SuccessRedirect))
	if err != nil {
		return err
	}

	creds := subscribe.NewCredentials(cfg.Newsletter.APIKey, cfg.Newsletter.APIKeyFile, afero.NewOsFs())
	_, credErr := creds.Resolve()

	fmt.Println("\n--- Site Check ---")
	fmt.Printf("Source:         %s\n", cfg.Static.Source)
	fmt.Printf("Missing files:  %v\n", missing)
	fmt.Printf("API key:        %v\n", credErr == nil)
	fmt.Println("------------------")

	if len(missing) > 0 {
		return fmt.Errorf("site is missing %d required file(s)", len(missing))
	}
	return credErr
}
