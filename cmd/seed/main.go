package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"varmepumpe/internal/auth"
	"varmepumpe/internal/config"
	"varmepumpe/internal/db"
	"varmepumpe/internal/repository"
	"varmepumpe/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Administrative data tasks for the varmepumpe service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newCreateAdminCmd(), newPostalCodesCmd())
	return root
}

func newCreateAdminCmd() *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, gormDB, logger, err := connect()
			if err != nil {
				return err
			}
			store := repository.NewStore(gormDB)
			authService := service.NewAuthService(
				store,
				auth.NewHasher(cfg.BcryptCost),
				auth.NewSessionService(cfg.SessionSecret, cfg.SessionTTL),
				auth.NewMemorySessionStore(),
				service.NewLogResetSender(logger),
				service.AuthOptions{},
				nil,
				logger,
			)

			user, err := authService.CreateAdmin(cmd.Context(), username, email, password)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			logger.Info("admin created", "user_id", user.ID, "username", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "admin", "admin username")
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newPostalCodesCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "postal-codes",
		Short: "Seed the postal code table",
		Long: "Without --source the built-in list is inserted into an empty table. " +
			"With --source, a JSON array of postal code rows is read from a file or http(s) URL and upserted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, gormDB, logger, err := connect()
			if err != nil {
				return err
			}
			postalCodes := service.NewPostalCodeService(repository.NewPostalCodeRepository(gormDB), nil, logger)
			ctx := cmd.Context()

			if source == "" {
				n, err := postalCodes.EnsureSeeded(ctx)
				if err != nil {
					return fmt.Errorf("seed postal codes: %w", err)
				}
				logger.Info("seed completed", "inserted", n)
				return nil
			}

			logger.Info("fetching postal codes", "source", source)
			rows, err := loadRows(ctx, source)
			if err != nil {
				return err
			}
			result, err := postalCodes.Import(ctx, rows)
			if err != nil {
				return fmt.Errorf("import postal codes: %w", err)
			}
			for _, msg := range result.Errors {
				logger.Warn("row skipped", "error", msg)
			}
			logger.Info("seed completed", "created", result.Created, "updated", result.Updated, "total", len(rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "file path or URL of a JSON array of postal code rows")
	return cmd
}

func connect() (*config.Config, *gorm.DB, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.Migrate(gormDB); err != nil {
		return nil, nil, nil, err
	}
	logger.Info("connected to database", "driver", cfg.DBDriver)
	return cfg, gormDB, logger, nil
}

// loadRows reads postal code rows from a local file or an http(s) URL.
func loadRows(ctx context.Context, source string) ([]service.PostalCodeRow, error) {
	var body []byte
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		if body, err = io.ReadAll(resp.Body); err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
	} else {
		var err error
		if body, err = os.ReadFile(source); err != nil {
			return nil, err
		}
	}

	var rows []service.PostalCodeRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return rows, nil
}
