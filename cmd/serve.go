package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Whilreal0/Klima-Pro/internal/catalog"
	"github.com/Whilreal0/Klima-Pro/internal/chat"
	"github.com/Whilreal0/Klima-Pro/internal/config"
	"github.com/Whilreal0/Klima-Pro/internal/contact"
	"github.com/Whilreal0/Klima-Pro/internal/db"
	"github.com/Whilreal0/Klima-Pro/internal/web"
)

var allowAllCORS bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long:  `Serves the KlimaPro PH site: rendered pages, the contact form API, the service catalog API, and the AI assistant websocket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Optional .env for API keys in development.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if allowAllCORS {
			cfg.AllowAllCORS = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		services, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("loading service catalog: %w", err)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "leads.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := web.New(web.Config{
			Port:     cfg.Port,
			BaseURL:  cfg.BaseURL,
			AllowAll: cfg.AllowAllCORS,
		})

		pages, err := web.NewPages(services, cfg.BaseURL, cfg.Recaptcha.SiteKey)
		if err != nil {
			return fmt.Errorf("building page handler: %w", err)
		}

		store := contact.NewStore(database)
		verifier := contact.NewVerifier(cfg.Recaptcha.Secret)
		contact.RegisterRoutes(srv.Router(), store, verifier, cfg.Recaptcha.SiteKey)

		if cfg.Chat.Provider != "" {
			factory := func() (chat.Provider, error) {
				return chat.NewProvider(cfg.Chat.Provider, cfg.Chat.Model)
			}
			chat.NewHandler(factory, nil, cfg.Chat.Model, cfg.Chat.SystemPrompt).RegisterRoutes(srv.Router())
		}

		// The page catch-all registers last.
		pages.RegisterRoutes(srv.Router())

		// Graceful shutdown on SIGINT/SIGTERM.
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			log.Printf("received %s, shutting down", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().BoolVar(&allowAllCORS, "allow-all-cors", false, "allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serveCmd)
}
