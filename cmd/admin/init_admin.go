package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// newInitAdminCmd bootstraps the staff account from configuration.
// Running it twice is safe: an existing account with the configured
// email is left untouched.
func newInitAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-admin",
		Short: "Create the staff admin account from ADMIN_EMAIL / ADMIN_PHONE / ADMIN_PASSWORD",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.close()

			admin := env.cfg.Admin
			if admin.Email == "" || admin.Password == "" {
				return fmt.Errorf("admin email and password must be configured")
			}

			ctx := cmd.Context()
			var exists bool
			err = env.db.QueryRowContext(ctx,
				`SELECT EXISTS (SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1))`,
				admin.Email,
			).Scan(&exists)
			if err != nil {
				return fmt.Errorf("check admin: %w", err)
			}
			if exists {
				env.l.Infof(ctx, "Admin %s already exists, nothing to do", admin.Email)
				return nil
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}

			_, err = env.db.ExecContext(ctx,
				`INSERT INTO admins (email, phone, password_hash, created_at) VALUES ($1, $2, $3, NOW())`,
				admin.Email, admin.Phone, string(hash),
			)
			if err != nil {
				return fmt.Errorf("insert admin: %w", err)
			}

			env.l.Infof(ctx, "Admin %s created", admin.Email)
			return nil
		},
	}
}
