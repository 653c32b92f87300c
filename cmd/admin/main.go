package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"canny-backend/internal/core/config"
	"canny-backend/internal/core/database"
	"canny-backend/internal/core/logger"
	"canny-backend/internal/domain"
	"canny-backend/internal/repo"
	"canny-backend/internal/service"
)

const usage = `usage: admin [flags] <command>

commands:
  migrate   create or update tables
  users     list recently registered users

flags:
`

func main() {
	fs := pflag.NewFlagSet("admin", pflag.ExitOnError)
	cfgPath := fs.StringP("config", "c", os.Getenv("CONFIG_PATH"), "config file (yaml)")
	offset := fs.Int("offset", 0, "users: rows to skip")
	limit := fs.IntP("limit", "n", 20, "users: rows to show (max 100)")
	timeout := fs.Duration("timeout", 30*time.Second, "overall timeout")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch cmd := fs.Arg(0); cmd {
	case "migrate":
		if err := repo.AutoMigrate(ctx, db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done", zap.String("driver", cfg.DB.Driver))
	case "users":
		users, total, err := service.NewUserService(repo.NewUserRepo(db)).Recent(ctx, *offset, *limit)
		if err != nil {
			log.Fatal("list users failed", zap.Error(err))
		}
		printUsers(os.Stdout, users, total)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		os.Exit(2)
	}
}

func printUsers(w io.Writer, users []domain.User, total int64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName, u.CurrentRole, u.CreatedAt.Format(time.RFC3339))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d of %d users\n", len(users), total)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
