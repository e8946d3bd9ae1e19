package commands

import (
	"github.com/spf13/cobra"

	"github.com/2beens/gymcycle/internal/love"
	"github.com/2beens/gymcycle/internal/setup"
)

func newCheckEnvCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-env",
		Short: "Validate the sheet id and the service account key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := setup.CheckEnv(a.secrets.SheetID, a.secrets.GoogleServiceAccountJSON)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printf(out, "✅ GYMCYCLE_SHEET_ID: %s\n", a.secrets.SheetID)
			printf(out, "✅ service account: %s\n", email)
			printf(out, "share the spreadsheet with %s as editor\n", email)
			return nil
		},
	}
}

func newSetupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create the fitness sheets and seed sessions and exercises",
		Long: `Creates Workout_Sessions, Exercises, Workout_Log and Exercise_Check when missing,
rewrites the session and exercise reference data and makes sure the log sheets have headers.
Logged workouts are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := setup.Fitness(cmd.Context(), store); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "✅ fitness sheets ready\n")
			return nil
		},
	}
}

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Add the Bodyweight_Log sheet and the weight and reps columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := setup.Migrate(cmd.Context(), store); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "✅ migration done\n")
			return nil
		},
	}
}

func newSetupLoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup-love",
		Short: "Create the inlove sheets and the default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := setup.Love(cmd.Context(), store); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "✅ love sheets ready\n")
			return nil
		},
	}
}

func newSeedLoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-love",
		Short: "Add sample timeline events, dreams and letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			if err := setup.SeedLove(cmd.Context(), love.NewRepo(store)); err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "✅ love sample data added\n")
			return nil
		},
	}
}
