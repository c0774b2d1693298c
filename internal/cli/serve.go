package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/internal/server"
	"github.com/matzehuels/gridkit/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen   string
		mongoURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and engine operations over HTTP",
		Long: `Serve layouts and engine operations over HTTP.

Layouts are stored by name, in memory by default or in MongoDB when a
connection URI is configured. The API lives under /v1:

  GET    /v1/layouts            list layout names
  PUT    /v1/layouts/{name}     create or replace a layout
  GET    /v1/layouts/{name}     fetch a layout
  DELETE /v1/layouts/{name}     delete a layout
  POST   /v1/layouts/{name}/ops apply an operation script
  GET    /v1/layouts/{name}/areas list the maximal free rectangles
  POST   /v1/compact            compact a posted layout document
  POST   /v1/render             render a posted layout document

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if listen == "" {
				listen = c.Config.Listen
			}
			if mongoURI == "" {
				mongoURI = c.Config.MongoURI
			}

			st, err := newStore(ctx, mongoURI)
			if err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}
			defer st.Close(context.Background())

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			srv := &http.Server{
				Addr:              listen,
				Handler:           server.New(st, runner, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", listen)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				c.Logger.Info("server stopped")
				return nil
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			}
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "bind address (default from config, then :8080)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB connection URI (default: in-memory store)")

	return cmd
}

// newStore picks the layout store backend.
func newStore(ctx context.Context, mongoURI string) (store.Store, error) {
	if mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoOptions{URI: mongoURI})
}
