package main

import (
	"fmt"
	"net/http"

	"github.com/factrack/factrack-backend-go/internal/config"
	appHTTP "github.com/factrack/factrack-backend-go/internal/handler/http"
	"github.com/factrack/factrack-backend-go/internal/pkg/database"
	"github.com/factrack/factrack-backend-go/internal/pkg/jwt"
	"github.com/factrack/factrack-backend-go/internal/repository/postgresql"
	authService "github.com/factrack/factrack-backend-go/internal/service/auth"
	brandService "github.com/factrack/factrack-backend-go/internal/service/brand"
	challanService "github.com/factrack/factrack-backend-go/internal/service/challan"
	checkService "github.com/factrack/factrack-backend-go/internal/service/check"
	cuttingService "github.com/factrack/factrack-backend-go/internal/service/cutting"
	fixValueService "github.com/factrack/factrack-backend-go/internal/service/fixvalue"
	machineService "github.com/factrack/factrack-backend-go/internal/service/machine"
	productionService "github.com/factrack/factrack-backend-go/internal/service/production"
	salaryService "github.com/factrack/factrack-backend-go/internal/service/salary"
	workerService "github.com/factrack/factrack-backend-go/internal/service/worker"
	workRecordService "github.com/factrack/factrack-backend-go/internal/service/workrecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	machineRepo := postgresql.NewMachineRepository(db)
	frameRepo := postgresql.NewFrameRepository(db)
	fixValueRepo := postgresql.NewFixValueRepository(db)
	productionRepo := postgresql.NewWorkerProductionRepository(db)
	workRecordRepo := postgresql.NewWorkRecordRepository(db)
	brandRepo := postgresql.NewThreadBrandRepository(db)
	challanRepo := postgresql.NewThreadChallanRepository(db)
	threadPriceRepo := postgresql.NewThreadPriceRepository(db)
	cuttingUserRepo := postgresql.NewCuttingUserRepository(db)
	cuttingDataRepo := postgresql.NewCuttingDataRepository(db)
	checkRepo := postgresql.NewCheckRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	workerSvc := workerService.NewWorkerService(workerRepo)
	machineSvc := machineService.NewMachineService(machineRepo, frameRepo)
	fixValueSvc := fixValueService.NewFixValueService(fixValueRepo)
	productionSvc := productionService.NewProductionService(productionRepo, workerRepo, machineRepo)
	salarySvc := salaryService.NewSalaryService(workerRepo, machineRepo, productionRepo, machineSvc, fixValueSvc)
	workRecordSvc := workRecordService.NewWorkRecordService(workRecordRepo, workerRepo, machineRepo)
	brandSvc := brandService.NewBrandService(db, brandRepo, challanRepo)
	challanSvc := challanService.NewChallanService(challanRepo, brandRepo)
	cuttingSvc := cuttingService.NewCuttingService(threadPriceRepo, cuttingUserRepo, cuttingDataRepo)
	checkSvc := checkService.NewCheckService(checkRepo)

	router := appHTTP.NewRouter(JWTService, cfg.App.AllowedOrigins, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Machine:    appHTTP.NewMachineHandler(machineSvc),
		FixValue:   appHTTP.NewFixValueHandler(fixValueSvc),
		Production: appHTTP.NewProductionHandler(productionSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Brand:      appHTTP.NewBrandHandler(brandSvc),
		Challan:    appHTTP.NewChallanHandler(challanSvc),
		Cutting:    appHTTP.NewCuttingHandler(cuttingSvc),
		WorkRecord: appHTTP.NewWorkRecordHandler(workRecordSvc),
		Check:      appHTTP.NewCheckHandler(checkSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
