package main

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/delivery/http/routers"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	smtpdriver "mediconnect-service/internal/app/drivers/mailer"
	"mediconnect-service/internal/app/drivers/messaging"
	miniodriver "mediconnect-service/internal/app/drivers/storage"
	"mediconnect-service/internal/app/services/core/appointments"
	"mediconnect-service/internal/app/services/core/auth"
	"mediconnect-service/internal/app/services/core/chats"
	"mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/app/services/core/healthreports"
	"mediconnect-service/internal/app/services/core/labtests"
	"mediconnect-service/internal/app/services/core/medicines"
	"mediconnect-service/internal/app/services/core/payments"
	"mediconnect-service/internal/app/services/core/users"
	"mediconnect-service/internal/app/services/shared/locker"
	"mediconnect-service/internal/app/services/shared/mailer"
	"mediconnect-service/internal/app/services/shared/ratelimiter"
	redisrepo "mediconnect-service/internal/app/services/shared/redis"
	"mediconnect-service/internal/app/services/shared/relay"
	"mediconnect-service/internal/app/services/shared/sessions"
	"mediconnect-service/internal/app/services/shared/storage"
	"mediconnect-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootstrapLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapTheApp(bootstrap, minioClient, smtpClient); err != nil {
		bootstrapLog.Fatalf("Failed to bootstrap the application: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootstrapLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootstrapLog.Printf("Error during dependency shutdown: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client, smtpClient *smtpdriver.SMTPClient) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	chatRelay := relay.NewRedisRelay(bootstrap.Redis, bootstrap.Logger)
	minioStorage := storage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)
	sessionService := sessions.NewSessionService(redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	otpRateLimiter := ratelimiter.NewFixedWindowLimiter(
		redisRepository,
		constvars.OTPRateLimiterGroup,
		constvars.OTPIssueMaxPerWindow,
		constvars.OTPIssueWindowSec*time.Second,
	)

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.RabbitMQQueue)
	if err != nil {
		return err
	}

	mailerWorker, err := mailer.NewWorker(bootstrap.RabbitMQ, smtpClient, bootstrap.InternalConfig.Mailer.RabbitMQQueue, bootstrap.Logger)
	if err != nil {
		return err
	}
	stopWorker, err := mailerWorker.Start(context.Background())
	if err != nil {
		return err
	}
	bootstrap.MailerWorkerStop = stopWorker

	// Repositories
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoDB, dbName)
	conversationRepository := chats.NewConversationMongoRepository(bootstrap.MongoDB, dbName)
	chatMessageRepository := chats.NewChatMessageMongoRepository(bootstrap.MongoDB, dbName)
	medicineRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB, dbName)
	labTestRepository := labtests.NewLabTestMongoRepository(bootstrap.MongoDB, dbName)
	healthReportRepository := healthreports.NewHealthReportMongoRepository(bootstrap.MongoDB, dbName)

	for _, ensure := range []func(context.Context) error{
		userRepository.EnsureIndexes,
		doctorRepository.EnsureIndexes,
		appointmentRepository.EnsureIndexes,
		paymentRepository.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	// Usecases
	userUsecase := users.NewUserUsecase(userRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, mailerService, otpRateLimiter, bootstrap.InternalConfig, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, userRepository, appointmentRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, doctorRepository, userRepository, lockService, bootstrap.Logger)
	paymentUsecase := payments.NewPaymentUsecase(paymentRepository, appointmentRepository, bootstrap.Logger)
	chatUsecase := chats.NewChatUsecase(conversationRepository, chatMessageRepository, userRepository, chatRelay, bootstrap.Logger)
	medicineUsecase := medicines.NewMedicineUsecase(medicineRepository, bootstrap.Logger)
	labTestUsecase := labtests.NewLabTestUsecase(labTestRepository, bootstrap.Logger)
	healthReportUsecase := healthreports.NewHealthReportUsecase(healthReportRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)

	// Controllers
	appControllers := &routers.Controllers{
		Health:       controllers.NewHealthController(),
		Auth:         auth.NewAuthController(bootstrap.Logger, authUsecase),
		User:         users.NewUserController(bootstrap.Logger, userUsecase),
		Doctor:       doctors.NewDoctorController(bootstrap.Logger, doctorUsecase),
		Appointment:  appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase),
		Payment:      payments.NewPaymentController(bootstrap.Logger, paymentUsecase),
		Chat:         chats.NewChatController(bootstrap.Logger, chatUsecase),
		Medicine:     medicines.NewMedicineController(bootstrap.Logger, medicineUsecase),
		LabTest:      labtests.NewLabTestController(bootstrap.Logger, labTestUsecase),
		HealthReport: healthreports.NewHealthReportController(bootstrap.Logger, healthReportUsecase, bootstrap.InternalConfig.App.ReportUploadMaxSizeInMB),
	}

	mw := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, mw, appControllers)
	return nil
}
