package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/gradebook/internal/cli"
	"github.com/alexanderramin/gradebook/internal/config"
	"github.com/alexanderramin/gradebook/internal/db"
	"github.com/alexanderramin/gradebook/internal/repository"
	"github.com/alexanderramin/gradebook/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	studentRepo := repository.NewSQLiteStudentRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)

	// Wire unit of work for transactional imports
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	// Wire services
	students := service.NewStudentService(studentRepo, assignmentRepo, observer)
	app := &cli.App{
		Students:     students,
		Reports:      service.NewReportService(students, observer),
		Imports:      service.NewImportService(uow, observer),
		DefaultOrder: cfg.TranscriptOrder,
	}

	// Forms are only shown on an interactive terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
