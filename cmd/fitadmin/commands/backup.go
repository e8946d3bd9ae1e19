package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/2beens/gymcycle/internal/backup"
)

func newBackupCommand(a *app) *cobra.Command {
	var (
		folderName string
		keepLast   int
		shareWith  string
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the spreadsheet into the Google Drive backups folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shareWith == "" {
				shareWith = os.Getenv("GYMCYCLE_BACKUP_SHARE_WITH")
			}

			driveBackup, err := backup.NewDriveBackup(cmd.Context(), backup.NewDriveBackupParams{
				CredentialsJSON: []byte(a.secrets.GoogleServiceAccountJSON),
				FolderName:      folderName,
				KeepLast:        keepLast,
				ShareWith:       shareWith,
				ClientOptions:   a.driveOptions,
			})
			if err != nil {
				return err
			}

			res, err := driveBackup.Backup(cmd.Context(), a.secrets.SheetID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printf(out, "✅ backup saved: %s (%s)\n", res.Name, res.FileID)
			if res.Pruned > 0 {
				printf(out, "🧹 %d old backups removed\n", res.Pruned)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folderName, "folder", backup.DefaultFolderName, "drive folder holding the backups")
	cmd.Flags().IntVar(&keepLast, "keep", 30, "number of backups to keep, 0 keeps all")
	cmd.Flags().StringVar(&shareWith, "share-with", "", "email getting read access to the backups, defaults to GYMCYCLE_BACKUP_SHARE_WITH")

	return cmd
}
