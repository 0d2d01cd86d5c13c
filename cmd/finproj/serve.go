package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/api"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/config"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine over HTTP",
		Long: `Serve the projection engine as a JSON API.

Examples:
  finproj serve --addr :8080 --metrics
  finproj serve --policy plans.yaml --redis localhost:6379 --cache-ttl 10m
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			policyFile, _ := cmd.Flags().GetString("policy")
			metrics, _ := cmd.Flags().GetBool("metrics")
			redisAddr, _ := cmd.Flags().GetString("redis")
			cacheTTL, _ := cmd.Flags().GetDuration("cache-ttl")

			policy := domain.DefaultPolicy()
			if policyFile != "" {
				var err error
				if policy, err = config.NewInputParser().LoadPolicyFromFile(policyFile); err != nil {
					return err
				}
			}

			engine := calculation.NewCalculationEngineWithPolicy(policy)
			engine.SetLogger(simpleCLILogger{})

			srv := api.NewServer(engine)
			srv.SetVersion(version)
			srv.EnableRequestLogging()
			if metrics {
				srv.EnableMetrics()
			}

			if redisAddr != "" {
				cache := api.NewRedisCache(redisAddr, cacheTTL)
				defer cache.Close()
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				if err := cache.Ping(ctx); err != nil {
					log.Printf("WARN: redis at %s unreachable, responses will not be cached: %v", redisAddr, err)
				} else {
					srv.SetCache(cache)
				}
				cancel()
			} else if cacheTTL > 0 {
				srv.SetCache(api.NewMemoryCache())
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Printf("finproj API listening on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err
			case <-quit:
			}

			log.Println("Shutting down server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			log.Println("Server exited")
			return nil
		},
	}
	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("policy", "", "Scenario or policy-only file whose policy block overrides the defaults")
	cmd.Flags().Bool("metrics", false, "Expose Prometheus metrics at /metrics")
	cmd.Flags().String("redis", "", "Redis address for the response cache (default: no cache)")
	cmd.Flags().Duration("cache-ttl", 0, "Response cache TTL; without --redis a positive TTL enables an in-memory cache")
	return cmd
}
