package main

import (
	"context"
	"fmt"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/database"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <username> <email> <password>",
	Short: "Create an administrator account",
	Args:  cobra.ExactArgs(3),
	RunE:  runCreateAdmin,
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List every account",
	Args:  cobra.NoArgs,
	RunE:  runListUsers,
}

var toggleAdminCmd = &cobra.Command{
	Use:   "toggle <username>",
	Short: "Flip a user's admin flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runToggleAdmin,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(listUsersCmd)
	rootCmd.AddCommand(toggleAdminCmd)
}

// openUserRepo loads config, connects and migrates, and returns the user
// repository every subcommand works against.
func openUserRepo() (repository.UserRepository, *config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to build logger")
	}

	db, err := database.Open(cfg, logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		return nil, nil, err
	}

	return database.NewUserRepository(db), cfg, nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	username, email, password := args[0], args[1], args[2]

	users, cfg, err := openUserRepo()
	if err != nil {
		return err
	}

	hash, err := auth.NewBcryptHasher(cfg).Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	admin := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(context.Background(), admin); err != nil {
		return err
	}

	fmt.Printf("Created admin %q (id %d)\n", admin.Username, admin.ID)

	return nil
}

func runListUsers(cmd *cobra.Command, args []string) error {
	users, _, err := openUserRepo()
	if err != nil {
		return err
	}

	all, err := users.FindAll(context.Background())
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No accounts found")

		return nil
	}

	fmt.Printf("%-6s %-20s %-30s %-6s %s\n", "ID", "USERNAME", "EMAIL", "ADMIN", "CREATED")
	for _, user := range all {
		fmt.Printf("%-6d %-20s %-30s %-6t %s\n",
			user.ID, user.Username, user.Email, user.IsAdmin,
			user.CreatedAt.Format("2006-01-02 15:04"))
	}

	return nil
}

func runToggleAdmin(cmd *cobra.Command, args []string) error {
	username := args[0]

	users, _, err := openUserRepo()
	if err != nil {
		return err
	}

	ctx := context.Background()
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := users.SetAdmin(ctx, user.ID, !user.IsAdmin); err != nil {
		return err
	}

	fmt.Printf("User %q admin flag is now %t\n", user.Username, !user.IsAdmin)

	return nil
}
