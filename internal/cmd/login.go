package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/pagepanel/internal/api"
	"github.com/gravitrone/pagepanel/internal/config"
)

// RunInteractiveLogin prompts for site and credentials, verifies them against
// the current-user endpoint, and persists config.
func RunInteractiveLogin(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	prompt := func(label string) string {
		fmt.Fprintf(out, "%s: ", label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	siteURL := prompt("site url")
	if siteURL == "" {
		return fmt.Errorf("site url is required")
	}
	email := prompt("email")
	token := prompt("api token")
	if token == "" {
		return fmt.Errorf("api token is required")
	}

	client := api.NewClient(siteURL, email, token)
	user, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		SiteURL:   strings.TrimRight(siteURL, "/"),
		Email:     email,
		APIToken:  token,
		AccountID: user.AccountID,
	}
	if existing, err := config.Load(); err == nil {
		cfg.Theme = existing.Theme
		cfg.SpaceName = existing.SpaceName
		cfg.PageID = existing.PageID
		cfg.TimeLayout = existing.TimeLayout
		cfg.LogPath = existing.LogPath
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	name := user.PublicName
	if name == "" {
		name = user.AccountID
	}
	fmt.Fprintf(out, "logged in as %s\n", name)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `pagepanel login` command.
func LoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Confluence site",
		RunE: func(c *cobra.Command, _ []string) error {
			return RunInteractiveLogin(c.Context(), os.Stdin, c.OutOrStdout())
		},
	}
}
