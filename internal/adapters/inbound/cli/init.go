package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/logcheck/logcheck/internal/adapters/outbound/config"
	"github.com/logcheck/logcheck/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		course string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .logcheck.yaml configuration file",
		Long:  "Create a .logcheck.yaml with the default log format rules.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if course != "" {
				cfg.CourseID = course
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course identifier required in row 2")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .logcheck.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := "# logcheck configuration\n" +
		"# drop_empty_fields: true discards empty fields (\"a,,b\" reads as two fields).\n\n"
	return append([]byte(header), body...), nil
}
