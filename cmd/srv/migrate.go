package main

import (
	"log"

	"github.com/templetoayurveda/backend/migration"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadDatabase()

	if err := migration.Migrate(server.newContext()); err != nil {
		return err
	}

	log.Println("migration completed")
	return nil
}
