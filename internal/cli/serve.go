package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtree/pkg/api"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve permutation lookups over HTTP",
		Long: `Serve permutation lookups over HTTP.

Endpoints:
  GET /healthz
  GET /version
  GET /v1/factorial/{n}
  GET /v1/alphabets/{alphabet}/permutations?limit=k
  GET /v1/alphabets/{alphabet}/permutations/{rank}?method=direct|enumeration
  GET /v1/alphabets/{alphabet}/ranks/{permutation}`,
		Example: `  permtree serve --addr :8080
  curl localhost:8080/v1/alphabets/abc/permutations/4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			return serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// serve runs the API until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
