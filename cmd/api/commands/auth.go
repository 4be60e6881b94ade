package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/taskflow/core/internal/client"
	"github.com/taskflow/core/internal/infrastructure/config"
	"github.com/taskflow/core/internal/ports"
	"github.com/taskflow/core/internal/session"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Run: func(cmd *cobra.Command, args []string) {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			register, _ := cmd.Flags().GetBool("register")
			name, _ := cmd.Flags().GetString("name")

			if email == "" || password == "" {
				log.Fatal("Email and password are required")
			}

			cfg, store := clientSetup()
			api := client.New(cfg.Client.BaseURL, cfg.Client.Timeout)

			var resp *ports.AuthResponse
			var err error
			if register {
				if name == "" {
					log.Fatal("Name is required when registering")
				}
				resp, err = api.Register(context.Background(), ports.RegisterRequest{
					Name: name, Email: email, Password: password,
				})
			} else {
				resp, err = api.Login(context.Background(), ports.LoginRequest{
					Email: email, Password: password,
				})
			}
			if err != nil {
				log.Fatalf("Login failed: %v", err)
			}

			if err := store.Set(session.Session{Token: resp.Token, User: resp.User}); err != nil {
				log.Fatalf("Failed to store session: %v", err)
			}

			fmt.Printf("Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
		},
	}

	loginCmd.Flags().String("email", "", "Account email (required)")
	loginCmd.Flags().String("password", "", "Account password (required)")
	loginCmd.Flags().Bool("register", false, "Create the account instead of logging in")
	loginCmd.Flags().String("name", "", "Display name (required with --register)")

	return loginCmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Run: func(cmd *cobra.Command, args []string) {
			_, store := clientSetup()
			if err := store.Clear(); err != nil {
				log.Fatalf("Failed to clear session: %v", err)
			}
			fmt.Println("Logged out")
		},
	}
}

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Run: func(cmd *cobra.Command, args []string) {
			_, store := clientSetup()
			sess, err := store.Load()
			if err != nil {
				fmt.Println("Not logged in")
				return
			}
			fmt.Printf("%s <%s>\n", sess.User.Name, sess.User.Email)
		},
	}
}

// clientSetup loads config and opens the session store shared by the client
// commands.
func clientSetup() (*config.Config, *session.Store) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := session.NewStore(cfg.Client.SessionFile)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}

	return cfg, store
}

// authedClient returns an API client carrying the stored bearer token.
func authedClient() (*config.Config, *client.Client) {
	cfg, store := clientSetup()

	sess, err := store.Load()
	if err != nil {
		log.Fatal("Not logged in: run `taskflow login` first")
	}

	return cfg, client.New(cfg.Client.BaseURL, cfg.Client.Timeout, client.WithToken(sess.Token))
}
