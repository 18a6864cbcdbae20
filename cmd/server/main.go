package main

import (
	"fmt"
	"os"

	"sep-workflow/internal/config"
	"sep-workflow/internal/database"
	"sep-workflow/internal/logging"
	"sep-workflow/internal/server"
	"sep-workflow/internal/service"
	"sep-workflow/internal/workflow"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg)

	db, err := database.Open(cfg)
	if err != nil {
		logrus.Fatalf("database error: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("migration error: %v", err)
	}
	if cfg.Seed.Enabled {
		if err := database.Seed(db, cfg.Seed.Password); err != nil {
			logrus.Fatalf("seed error: %v", err)
		}
	}

	svc := service.New(db, workflow.RecruitmentRules{AllowBypass: cfg.Workflow.AllowRecruitmentBypass})
	r := server.NewRouter(cfg, svc)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
