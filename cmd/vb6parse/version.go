package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vb6parse/internal/driver"
	"vb6parse/internal/version"
)

type versionPayload struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	Extensions []string `json:"extensions"`
	GitCommit  string   `json:"git_commit,omitempty"`
	GitMessage string   `json:"git_message,omitempty"`
	BuildDate  string   `json:"build_date,omitempty"`
}

var (
	versionFormat   string
	versionShowFull bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowFull, "full", false, "show commit, message and build date")
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show vb6parse build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch strings.ToLower(versionFormat) {
		case "json":
			return renderVersionJSON(cmd.OutOrStdout(), versionShowFull)
		case "pretty":
			return renderVersionPretty(cmd.OutOrStdout(), versionShowFull)
		}
		return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
	},
}

func renderVersionPretty(out io.Writer, full bool) error {
	if _, err := fmt.Fprintf(out, "vb6parse %s\n", version.Colored()); err != nil {
		return err
	}
	if !full {
		return nil
	}
	_, err := fmt.Fprintf(out, "commit:  %s\nmessage: %s\nbuilt:   %s\nsources: %s\n",
		valueOrUnknown(version.GitCommit),
		valueOrUnknown(version.GitMessage),
		valueOrUnknown(version.BuildDate),
		strings.Join(driver.SourceExts, " "))
	return err
}

func renderVersionJSON(out io.Writer, full bool) error {
	payload := versionPayload{
		Tool:       "vb6parse",
		Version:    version.Version,
		Extensions: driver.SourceExts,
	}
	if full {
		payload.GitCommit = valueOrUnknown(version.GitCommit)
		payload.GitMessage = valueOrUnknown(version.GitMessage)
		payload.BuildDate = valueOrUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unknown"
	}
	return s
}
