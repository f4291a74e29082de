// @title Community Site API
// @version 1.0
// @description Events, gallery, teachers, contacts, admissions and admin accounts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"communitysite/config"
	_ "communitysite/docs"
	"communitysite/internal/adapters/auth"
	"communitysite/internal/adapters/calendar"
	"communitysite/internal/adapters/email"
	"communitysite/internal/adapters/i18n"
	"communitysite/internal/adapters/media"
	"communitysite/internal/adapters/textgen"
	httpdelivery "communitysite/internal/delivery/http"
	"communitysite/internal/delivery/http/controllers"
	"communitysite/internal/domain"
	"communitysite/internal/repository/postgres"
	"communitysite/internal/services"
)

const bcryptCost = 12

func main() {
	app := &cli.App{
		Name:  "communitysite",
		Usage: "Community website API: events, gallery, teachers, contacts and admissions.",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			createAdminCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "Apply pending migrations before serving."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := config.NewLogger(cfg.Environment)

			db, err := postgres.Open(c.Context, cfg.DBUrl)
			if err != nil {
				return err
			}
			defer db.Close()

			if c.Bool("migrate") {
				if err := postgres.MigrateUp(db, logger); err != nil {
					return err
				}
			}
			return serve(c.Context, cfg, db, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) error {
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		},
		SendGrid: email.SendGridConfig{APIKey: cfg.Mail.SendGridAPIKey},
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}

	uploader, err := media.NewUploader(media.UploaderConfig{
		Provider: cfg.Media.Provider,
		S3: media.S3Config{
			Bucket:          cfg.Media.Bucket,
			PublicBaseURL:   cfg.Media.PublicBaseURL,
			Region:          cfg.Media.AWSRegion,
			AccessKeyID:     cfg.Media.AWSAccessKeyID,
			SecretAccessKey: cfg.Media.AWSSecretAccessKey,
			Endpoint:        cfg.Media.Endpoint,
			MaxBytes:        cfg.Media.MaxUploadBytes,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create uploader: %w", err)
	}

	generator, err := textgen.NewGemini(ctx, textgen.GeminiConfig{
		APIKey: cfg.AI.GeminiAPIKey,
		Model:  cfg.AI.GeminiModel,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("create text generator: %w", err)
	}

	translator, err := i18n.NewTranslator("en", logger)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	site := domain.Branding{
		Name:         cfg.Site.Name,
		URL:          cfg.Site.URL,
		LogoURL:      cfg.Site.LogoURL,
		SupportPhone: cfg.Site.SupportPhone,
	}
	runner := services.NewBackgroundRunner(cfg.NotifyTimeout, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), site, cfg.Mail.AdminAddress, logger)
	tokens := auth.NewJWT(cfg.JWTSecret, cfg.JWTExpiry)

	galleryRepo := postgres.NewGalleryRepository(db)
	eventService := services.NewEventService(services.EventServiceDeps{
		Events:     postgres.NewEventRepository(db),
		Gallery:    galleryRepo,
		Uploader:   uploader,
		Email:      emailService,
		Translator: translator,
		Runner:     runner,
		Site:       site,
		Timeout:    cfg.ContextTimeout,
		Logger:     logger,
	})
	galleryService := services.NewGalleryService(galleryRepo, uploader, cfg.ContextTimeout)
	teacherService := services.NewTeacherService(postgres.NewTeacherRepository(db), uploader, cfg.Site.DefaultTeacherImage, cfg.ContextTimeout)
	contactService := services.NewContactService(postgres.NewContactRepository(db), emailService, runner, cfg.ContextTimeout)
	admissionService := services.NewAdmissionService(postgres.NewAdmissionRepository(db), emailService, runner, cfg.ContextTimeout)
	userService := services.NewUserService(postgres.NewUserRepository(db), auth.NewBcryptHasher(bcryptCost), tokens, cfg.JWTExpiry, cfg.ContextTimeout)
	draftService := services.NewDraftService(generator, cfg.ContextTimeout)

	maxUpload := cfg.Media.MaxUploadBytes
	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		SiteName:   cfg.Site.Name,
		Events:     controllers.NewEventController(logger, eventService, calendar.NewICSEncoder(cfg.Site.Name, hostOf(cfg.Site.URL)), maxUpload),
		Gallery:    controllers.NewGalleryController(logger, galleryService, maxUpload),
		Teachers:   controllers.NewTeacherController(logger, teacherService, maxUpload),
		Contacts:   controllers.NewContactController(logger, contactService),
		Admissions: controllers.NewAdmissionController(logger, admissionService),
		Users:      controllers.NewUserController(logger, userService),
		Drafts:     controllers.NewDraftController(logger, draftService),
	}, tokens, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpdelivery.Handler(mux, cfg.AllowedOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
	if err := runner.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Pending notifications dropped", "error", err)
	}
	return nil
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply or roll back schema migrations.",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply all pending migrations.",
				Action: func(c *cli.Context) error {
					return withDB(c, func(_ *config.Config, db *sql.DB, logger *slog.Logger) error {
						return postgres.MigrateUp(db, logger)
					})
				},
			},
			{
				Name:  "down",
				Usage: "Roll back migrations.",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "Number of migrations to roll back."},
				},
				Action: func(c *cli.Context) error {
					return withDB(c, func(_ *config.Config, db *sql.DB, logger *slog.Logger) error {
						return postgres.MigrateDown(db, c.Int("steps"), logger)
					})
				},
			},
		},
	}
}

func createAdminCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-admin",
		Usage: "Create an admin account for the dashboard.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
			&cli.StringFlag{Name: "name"},
		},
		Action: func(c *cli.Context) error {
			return withDB(c, func(cfg *config.Config, db *sql.DB, logger *slog.Logger) error {
				svc := services.NewUserService(
					postgres.NewUserRepository(db),
					auth.NewBcryptHasher(bcryptCost),
					auth.NewJWT(cfg.JWTSecret, cfg.JWTExpiry),
					cfg.JWTExpiry,
					cfg.ContextTimeout,
				)
				user, err := svc.CreateUser(c.Context, &domain.CreateUserInput{
					Name:     c.String("name"),
					Email:    c.String("email"),
					Password: c.String("password"),
				})
				if err != nil {
					return fmt.Errorf("create admin: %w", err)
				}
				logger.Info("Admin created", "id", user.ID, "email", user.Email)
				return nil
			})
		},
	}
}

func withDB(c *cli.Context, fn func(cfg *config.Config, db *sql.DB, logger *slog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment)
	db, err := postgres.Open(c.Context, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(cfg, db, logger)
}

func hostOf(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Hostname() == "" {
		return "localhost"
	}
	return u.Hostname()
}
