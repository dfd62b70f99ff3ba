package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/minutes/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change client settings",
	Long: `Reads and writes ~/.minutes/config.toml.

Keys:
  api.base_url             meeting service URL
  api.token                bearer token (use "config token" to enter it hidden)
  api.timeout_seconds      per-request timeout, 0 disables it
  api.requests_per_second  request throttle, 0 disables it
  export.mode              open or download
  export.dir               directory for downloaded PDFs
  watch.max_concurrent     parallel uploads in watch mode
  history.enabled          record processed meetings locally`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Enter the API bearer token without echo",
	Args:  cobra.NoArgs,
	RunE:  runConfigToken,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd, configTokenCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	s, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	token := "(not set)"
	if s.API.HasToken() {
		token = maskAPIKey(s.API.Token)
	}

	cmd.Println("API")
	cmd.Printf("  base_url:             %s\n", s.API.BaseURL)
	cmd.Printf("  token:                %s\n", token)
	cmd.Printf("  timeout_seconds:      %d\n", int(s.API.Timeout.Seconds()))
	cmd.Printf("  requests_per_second:  %g\n", s.API.RequestsPerSecond)
	cmd.Println("Export")
	cmd.Printf("  mode:                 %s\n", s.Export.Mode)
	cmd.Printf("  dir:                  %s\n", s.Export.Dir)
	cmd.Println("Watch")
	cmd.Printf("  max_concurrent:       %d\n", s.Watch.MaxConcurrent)
	cmd.Println("History")
	cmd.Printf("  enabled:              %t\n", s.History.Enabled)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	if err := svc.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigToken(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}

	cmd.Print("API token (empty to clear): ")
	token := readPassword(cmd.InOrStdin())
	cmd.Println()

	if err := svc.Set("api.token", token); err != nil {
		return err
	}
	if token == "" {
		cmd.Println("Token cleared")
		return nil
	}
	cmd.Printf("Token saved (%s)\n", maskAPIKey(token))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	path := svc.Path()
	if path == "" {
		return fmt.Errorf("%w: settings are not file backed", domain.ErrNotFound)
	}
	cmd.Println(path)
	return nil
}

func readPassword(in io.Reader) string {
	// Read without echo when attached to a terminal.
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(password))
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
