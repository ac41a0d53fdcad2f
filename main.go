package main

import (
	"log"

	"github.com/SSub-jun/edu-platform-sub001/config"
	examController "github.com/SSub-jun/edu-platform-sub001/controllers/exam"
	lessonController "github.com/SSub-jun/edu-platform-sub001/controllers/lesson"
	"github.com/SSub-jun/edu-platform-sub001/database"
	"github.com/SSub-jun/edu-platform-sub001/exam"
	adminRoutes "github.com/SSub-jun/edu-platform-sub001/routers/adminRoutes"
	authRoutes "github.com/SSub-jun/edu-platform-sub001/routers/authRoutes"
	examRoutes "github.com/SSub-jun/edu-platform-sub001/routers/examRoutes"
	lessonRoutes "github.com/SSub-jun/edu-platform-sub001/routers/lessonRoutes"
	qnaRoutes "github.com/SSub-jun/edu-platform-sub001/routers/qnaRoutes"
	userRoutes "github.com/SSub-jun/edu-platform-sub001/routers/userRoutes"
	"github.com/SSub-jun/edu-platform-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func examConfig() exam.Config {
	cfg := exam.DefaultConfig()
	cfg.PassThreshold = config.AppConfig.PassThreshold
	cfg.AttemptsPerCycle = config.AppConfig.AttemptsPerCycle
	cfg.MaxCycles = config.AppConfig.MaxCycles
	cfg.UnlockThreshold = config.AppConfig.UnlockThreshold
	cfg.MinQuestionBankSize = config.AppConfig.MinQuestionBankSize
	cfg.SubjectQuestionCount = config.AppConfig.SubjectQuestionCount
	cfg.LessonQuestionCount = config.AppConfig.LessonQuestionCount
	cfg.DefaultVideoDuration = config.AppConfig.DefaultVideoDuration
	cfg.RequireExamPassToUnlock = config.AppConfig.RequireExamPassToUnlock
	return cfg
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	engine := exam.NewEngine(database.Database.Db, examConfig())
	lessonController.SetEngine(engine)
	examController.SetEngine(engine)

	utils.InitializeEnrollmentScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	examRoutes.SetupExamRoutes(app)
	qnaRoutes.SetupQnaRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
