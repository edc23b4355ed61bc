package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/memory/v2"
	fredis "github.com/gofiber/storage/redis/v3"
	"github.com/khanghh/evote/internal/config"
	"github.com/khanghh/evote/internal/handlers"
	"github.com/khanghh/evote/internal/middlewares"
	"github.com/khanghh/evote/internal/middlewares/csrf"
	"github.com/khanghh/evote/internal/middlewares/sessions"
	"github.com/khanghh/evote/internal/render"
	"github.com/khanghh/evote/internal/repository"
	"github.com/khanghh/evote/internal/store"
	"github.com/khanghh/evote/internal/users"
	"github.com/khanghh/evote/model"
	"github.com/khanghh/evote/params"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	app       *cli.App
	gitCommit string
	gitDate   string
	gitTag    string
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file",
		Value: "config.yaml",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func init() {
	app = cli.NewApp()
	app.EnableBashCompletion = true
	app.Usage = "Voter registration service"
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Flags = []cli.Flag{
		configFileFlag,
		debugFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:  "version",
			Usage: "Print version information",
			Action: func(ctx *cli.Context) error {
				fmt.Println(params.VersionWithCommit(gitCommit, gitDate))
				if gitTag != "" {
					fmt.Println("tag:", gitTag)
				}
				return nil
			},
		},
	}
	app.Action = run
}

func initLogger(debug bool) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

func mustInitDatabase(dbConfig config.MySQLConfig) *gorm.DB {
	if dbConfig.Dsn == "" {
		slog.Error("MySQL dsn is not configured")
		os.Exit(1)
	}
	db, err := gorm.Open(mysql.Open(dbConfig.Dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("Could not connect to database", "error", err)
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Could not get database connection pool", "error", err)
		os.Exit(1)
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxIdleTime(time.Duration(dbConfig.ConnMaxIdleTime) * time.Second)
	sqlDB.SetConnMaxLifetime(time.Duration(dbConfig.ConnMaxLifetime) * time.Second)

	if err := db.AutoMigrate(model.Models...); err != nil {
		slog.Error("Could not migrate database", "error", err)
		os.Exit(1)
	}
	return db
}

func initSessionStorage(redisURL string) fiber.Storage {
	if redisURL == "" {
		slog.Warn("redisURL is not configured, sessions are kept in memory")
		return memory.New(memory.Config{GCInterval: 10 * time.Second})
	}
	return store.NewKVStorage(fredis.New(fredis.Config{URL: redisURL}), params.SessionKeyPrefix)
}

func run(cliCtx *cli.Context) error {
	conf, err := config.LoadConfig(cliCtx.String(configFileFlag.Name))
	if err != nil {
		slog.Error("Could not load config file.", "error", err)
		return err
	}
	initLogger(conf.Debug || cliCtx.IsSet(debugFlag.Name))

	db := mustInitDatabase(conf.MySQL)
	userService := users.NewUserService(repository.NewUserRepository(db))

	sessionStore := session.New(session.Config{
		Storage:        initSessionStorage(conf.RedisURL),
		Expiration:     conf.Session.SessionMaxAge,
		KeyLookup:      "cookie:" + conf.Session.CookieName,
		CookieHTTPOnly: conf.Session.CookieHttpOnly,
		CookieSecure:   conf.Session.CookieSecure,
		CookieSameSite: "Lax",
	})

	render.InitValues(fiber.Map{"siteName": conf.AppName})
	router := fiber.New(fiber.Config{
		AppName:      conf.AppName,
		Views:        render.NewHtmlEngine(conf.TemplateDir),
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    params.ServerBodyLimit,
		IdleTimeout:  params.ServerIdleTimeout,
		ReadTimeout:  params.ServerReadTimeout,
		WriteTimeout: params.ServerWriteTimeout,
	})
	router.Static("/static", conf.StaticDir)
	router.Use(sessions.SessionMiddleware(sessionStore))
	router.Use(csrf.New())

	handlers.SetupRoutes(router,
		handlers.NewRegisterHandler(userService),
		handlers.NewLoginHandler(userService),
	)

	slog.Info("Starting voter registration server", "address", conf.ListenAddr)
	return router.Listen(conf.ListenAddr)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
