package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogDomain "library-lending/internal/catalog"
	catalogRepo "library-lending/internal/catalog/repository/postgre"
	catalogUC "library-lending/internal/catalog/usecase"
	memberRepo "library-lending/internal/member/repository"
	memberPostgre "library-lending/internal/member/repository/postgre"
	"library-lending/internal/model"
)

// newSeedCmd loads a handful of sample items and members for local
// development. Safe to re-run: members dedupe on email, items are
// appended.
func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed sample items and members for development",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv()
			if err != nil {
				return err
			}
			defer env.close()
			ctx := cmd.Context()

			items := catalogUC.New(catalogRepo.New(env.db, env.l), env.l)
			seedItems := []catalogDomain.CreateItemInput{
				{Title: "Things Fall Apart", Author: "Chinua Achebe", Kind: model.KindPhysical, LoanDurationDays: 14, Location: "Shelf A1", Keywords: "classic, fiction"},
				{Title: "Homegoing", Author: "Yaa Gyasi", Kind: model.KindPhysical, LoanDurationDays: 14, Location: "Shelf A2", Keywords: "historical, fiction"},
				{Title: "The Beautyful Ones Are Not Yet Born", Author: "Ayi Kwei Armah", Kind: model.KindDigital, LoanDurationDays: 14, Location: "https://reader.example.com/beautyful-ones", Keywords: "classic"},
			}
			for _, in := range seedItems {
				if _, err := items.Create(ctx, in); err != nil {
					return fmt.Errorf("seed item %q: %w", in.Title, err)
				}
			}

			members := memberPostgre.New(env.db, env.l)
			seedMembers := []memberRepo.CreateMemberOptions{
				{FirstName: "Ama", Surname: "Mensah", Email: "ama@example.com", Phone: "0244123456", Residence: "Osu"},
				{FirstName: "Kojo", Surname: "Asante", Email: "kojo@example.com", Phone: "0201987654", Residence: "Dansoman"},
			}
			var created int
			for _, opt := range seedMembers {
				existing, err := members.GetMemberByEmail(ctx, opt.Email)
				if err != nil {
					return fmt.Errorf("check member %s: %w", opt.Email, err)
				}
				if existing.ID != 0 {
					continue
				}
				if _, err := members.CreateMember(ctx, opt); err != nil {
					return fmt.Errorf("seed member %s: %w", opt.Email, err)
				}
				created++
			}

			fmt.Printf("Seeded %d items and %d members\n", len(seedItems), created)
			return nil
		},
	}
}
