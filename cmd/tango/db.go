package main

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tangolearn/tango/schemas"
)

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance commands",
	}

	dbCommand.AddCommand(newDBMigrateCommand())

	return dbCommand
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			names, err := fs.Glob(schemas.Migrations, "migrations/*.up.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob(migrations) > %w", err)
			}
			sort.Strings(names)

			for _, name := range names {
				content, err := fs.ReadFile(schemas.Migrations, name)
				if err != nil {
					return fmt.Errorf("fs.ReadFile(%s) > %w", name, err)
				}
				if strings.TrimSpace(string(content)) == "" {
					continue
				}
				if _, err := db.ExecContext(cmd.Context(), string(content)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
				}
				fmt.Printf("applied %s\n", name)
			}
			return nil
		},
	}
}
