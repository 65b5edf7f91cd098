package main

import (
	"os"
	"os/signal"
	"syscall"

	"rota-manager/internal/config"
	"rota-manager/internal/grid"
	"rota-manager/internal/handler"
	"rota-manager/internal/repository"
	"rota-manager/internal/scheduler"
	"rota-manager/internal/seed"
	"rota-manager/internal/service"
	"rota-manager/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true, // SQLite limitation
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	staffRepo, err := repository.NewGormStaffRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create staff repository")
	}

	shiftRepo, err := repository.NewGormShiftTypeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create shift type repository")
	}

	absenceRepo, err := repository.NewGormAbsenceRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create absence repository")
	}

	allocationRepo, err := repository.NewGormAllocationRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create allocation repository")
	}

	// One workbook holds every month grid as a worksheet.
	gridStore, err := grid.NewExcelStore(cfg.WorkbookPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open workbook store")
	}

	catalogService := service.NewCatalogService(shiftRepo)
	allocationService := service.NewAllocationService(allocationRepo)
	sheetService := service.NewSheetService(gridStore, catalogService, allocationRepo)

	// Catalog and allocation changes must reach every materialized
	// grid, otherwise the aggregate columns miscount.
	catalogService.OnChange(sheetService.Resync)
	allocationService.OnChange(sheetService.Resync)

	staffService := service.NewStaffService(staffRepo, gridStore, sheetService)
	scheduleService := service.NewScheduleService(sheetService, catalogService)
	absenceService := service.NewAbsenceService(absenceRepo, sheetService)

	if err := seed.Import(cfg.SeedPath, staffRepo, shiftRepo, allocationRepo); err != nil {
		logrus.Infof("Warning: Failed to import seed file: %v", err)
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		staffService,
		catalogService,
		sheetService,
		scheduleService,
		absenceService,
		allocationService,
		cfg,
	)

	gridScheduler := scheduler.NewGridScheduler(sheetService, cfg.GridPrepCron)
	if err := gridScheduler.Start(); err != nil {
		logrus.WithError(err).Fatal("Failed to start grid scheduler")
	}

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	gridScheduler.Stop()

	if err := gridStore.Flush(); err != nil {
		logrus.Infof("Error saving workbook: %v", err)
	}
	if err := gridStore.Close(); err != nil {
		logrus.Infof("Error closing workbook: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
