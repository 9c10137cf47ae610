package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	memberRepo "library-lending/internal/member/repository/postgre"
	memberUC "library-lending/internal/member/usecase"
)

// newImportMembersCmd bulk-imports members from a CSV file, keyed by
// email. Existing members are skipped, never updated.
func newImportMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-members <csv-file>",
		Short: "Import members from a CSV file (first_name,surname,other_names,email,phone,residence,landmark)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer f.Close()

			uc := memberUC.New(memberRepo.New(env.db, env.l), env.l)
			out, err := uc.ImportCSV(cmd.Context(), f)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			fmt.Printf("Imported %d members (%d skipped, %d invalid rows)\n", out.Created, out.Skipped, out.Invalid)
			return nil
		},
	}
}
