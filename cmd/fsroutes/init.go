package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/fsroutes/internal/config"
	"github.com/vango-dev/fsroutes/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		yamlFormat bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default fsroutes config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			if config.Exists(dir) && !force {
				return errors.New("E120").
					WithPath(dir).
					WithDetail("A config file already exists.").
					WithSuggestion("Pass --force to overwrite it")
			}

			name := config.ConfigFileName
			if yamlFormat {
				name = "fsroutes.yaml"
			}
			path := filepath.Join(dir, name)

			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd, "Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yamlFormat, "yaml", false, "Write fsroutes.yaml instead of fsroutes.json")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
