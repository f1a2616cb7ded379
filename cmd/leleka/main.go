// Command leleka is a CLI over the Leleka API client: auth, diary, tasks,
// week content and profile. It drives the same cache and store layer the
// application uses, so list pagination and the optimistic task toggle behave
// exactly as they do in the product.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/leleka-app/leleka-go/client"
	"github.com/leleka-app/leleka-go/internal/config"
	"github.com/leleka-app/leleka-go/internal/refetch"
	"github.com/leleka-app/leleka-go/query"
	"github.com/leleka-app/leleka-go/store"
)

var (
	serviceURL string
	debug      bool
	email      string
	password   string
	cookie     string
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "leleka",
		Short: "Leleka CLI for diary entries, tasks and pregnancy week content",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.InitLogger()
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("LELEKA_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("LELEKA_API_URL", "https://lehlehka.b.goit.study")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the Leleka API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&email, "email", os.Getenv("LELEKA_EMAIL"), "Account email (logs in before running the command)")
	rootCmd.PersistentFlags().StringVar(&password, "password", os.Getenv("LELEKA_PASSWORD"), "Account password")
	rootCmd.PersistentFlags().StringVar(&cookie, "cookie", "", "Raw Cookie header of an existing session")

	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newGreetingCmd())
	rootCmd.AddCommand(newWeekCmd())
	rootCmd.AddCommand(newCurrentWeekCmd())
	rootCmd.AddCommand(newDiaryCmd())
	rootCmd.AddCommand(newTasksCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newEmotionsCmd())

	return rootCmd
}

// env holds everything a subcommand needs: the API client, the query cache
// and the stores built on it.
type env struct {
	api   *client.Client
	cache *query.Cache
	gate  *store.SessionGate
	feed  *store.DiaryFeed
	board *store.TaskBoard
}

// newEnv builds the client and stores, logging in when credentials were
// given. Each CLI invocation is one session.
func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	api := client.New(serviceURL)
	if email != "" && password != "" {
		if _, err := api.Login(ctx, client.Credentials{Email: email, Password: password}); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}

	rfCfg, err := refetch.LoadConfig()
	if err != nil {
		return nil, err
	}
	cache := query.New(
		query.WithDefaultStaleAfter(cfg.StaleAfter),
		query.WithPool(refetch.NewPool(rfCfg)),
	)

	gate := store.NewSessionGate(cache, api, cfg.SessionStale)
	if email != "" && password != "" {
		gate.MarkAuthenticated(true)
	}

	return &env{
		api:   api,
		cache: cache,
		gate:  gate,
		feed:  store.NewDiaryFeed(cache, api, gate, cfg.PageSize),
		board: store.NewTaskBoard(cache, api, gate),
	}, nil
}

func (e *env) close() { e.cache.Close() }

// opts returns per-request options: a forwarded cookie when one was given.
func reqOpts() []client.RequestOption {
	if cookie != "" {
		return []client.RequestOption{client.WithCookieHeader(cookie)}
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRegisterCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and open a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(serviceURL)
			u, err := api.Register(cmd.Context(), client.Credentials{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			return printJSON(u)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	return cmd
}

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Report whether the current session is valid",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()
			fmt.Println(e.api.CheckSession(cmd.Context(), reqOpts()...))
			return nil
		},
	}
}
