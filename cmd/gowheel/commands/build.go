package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gowheel/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <go-module-dir>",
		Short: "Cross-compile a Go module and package it as Python wheels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			version, _ := cmd.Flags().GetString("version")
			outputDir, _ := cmd.Flags().GetString("output-dir")
			entryPoint, _ := cmd.Flags().GetString("entry-point")
			platforms, _ := cmd.Flags().GetString("platforms")
			goBinary, _ := cmd.Flags().GetString("go-binary")
			description, _ := cmd.Flags().GetString("description")
			requiresPython, _ := cmd.Flags().GetString("requires-python")
			author, _ := cmd.Flags().GetString("author")
			authorEmail, _ := cmd.Flags().GetString("author-email")
			license, _ := cmd.Flags().GetString("license")
			url, _ := cmd.Flags().GetString("url")
			readme, _ := cmd.Flags().GetString("readme")
			ldflags, _ := cmd.Flags().GetString("ldflags")
			setVersionVar, _ := cmd.Flags().GetString("set-version-var")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			watch, _ := cmd.Flags().GetBool("watch")

			return c.app.Build(cmd.Context(), args[0], app.BuildOptions{
				Name:           name,
				Version:        version,
				OutputDir:      outputDir,
				EntryPoint:     entryPoint,
				Platforms:      splitPlatforms(platforms),
				GoBinary:       goBinary,
				Description:    description,
				RequiresPython: requiresPython,
				Author:         author,
				AuthorEmail:    authorEmail,
				License:        license,
				URL:            url,
				ReadmePath:     readme,
				LDFlags:        ldflags,
				SetVersionVar:  setVersionVar,
				NoCache:        noCache,
				Watch:          watch,
			})
		},
	}

	cmd.Flags().String("name", "", "Package name (defaults to the source directory basename)")
	cmd.Flags().String("version", "", "Package version (default: 0.1.0)")
	cmd.Flags().StringP("output-dir", "o", "", "Directory for built wheels (default: ./dist)")
	cmd.Flags().String("entry-point", "", "CLI command name (defaults to the package name)")
	cmd.Flags().StringP("platforms", "p", "", "Comma-separated list of target platforms")
	cmd.Flags().String("go-binary", "", "Path to the Go compiler (default: go)")
	cmd.Flags().String("description", "", "Package description")
	cmd.Flags().String("requires-python", "", "Python version requirement (default: >=3.10)")
	cmd.Flags().String("author", "", "Author name")
	cmd.Flags().String("author-email", "", "Author email")
	cmd.Flags().String("license", "", "License identifier")
	cmd.Flags().String("url", "", "Project URL")
	cmd.Flags().String("readme", "", "Path to a README markdown file for the long description")
	cmd.Flags().String("ldflags", "", "Extra Go linker flags appended to the default '-s -w'")
	cmd.Flags().String("set-version-var", "", "Go variable to set to the package version via an -X ldflag (e.g. 'main.version')")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the build cache and force recompilation")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild wheels when the source tree changes")

	return cmd
}

// splitPlatforms parses the comma-separated platform list, trimming blanks.
func splitPlatforms(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
