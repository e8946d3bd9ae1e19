package backup

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

const (
	DefaultFolderName = "gymcycle-backup"
	folderMimeType    = "application/vnd.google-apps.folder"
	backupTimeLayout  = "2006-01-02-150405"
)

var ErrSpreadsheetIDMissing = errors.New("spreadsheet id missing")

// DriveBackup copies the spreadsheet into a backups folder on Google Drive.
type DriveBackup struct {
	service    *drive.Service
	folderName string
	keepLast   int // 0 keeps all copies
	shareWith  string
	now        func() time.Time
}

type Result struct {
	FileID   string
	Name     string
	FolderID string
	Pruned   int
}

type NewDriveBackupParams struct {
	CredentialsJSON []byte
	FolderName      string
	KeepLast        int
	// optional email that gets reader access to new copies
	ShareWith       string
	ClientOptions   []option.ClientOption
}

func NewDriveBackup(ctx context.Context, params NewDriveBackupParams) (*DriveBackup, error) {
	opts := params.ClientOptions
	if len(params.CredentialsJSON) > 0 {
		opts = append([]option.ClientOption{option.WithCredentialsJSON(params.CredentialsJSON)}, opts...)
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	folderName := params.FolderName
	if folderName == "" {
		folderName = DefaultFolderName
	}

	return &DriveBackup{
		service:    driveService,
		folderName: folderName,
		keepLast:   params.KeepLast,
		shareWith:  params.ShareWith,
		now:        time.Now,
	}, nil
}

// Backup makes a copy of the spreadsheet in the backups folder and prunes old copies.
func (b *DriveBackup) Backup(ctx context.Context, spreadsheetID string) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.drive.backup")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if spreadsheetID == "" {
		return nil, ErrSpreadsheetIDMissing
	}

	folderID, err := b.ensureFolder(ctx)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("gymcycle-%s", b.now().UTC().Format(backupTimeLayout))
	copied, err := b.service.Files.
		Copy(spreadsheetID, &drive.File{
			Name:    name,
			Parents: []string{folderID},
		}).
		Fields("id, name").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("copy spreadsheet %s: %w", spreadsheetID, err)
	}
	log.Printf("spreadsheet copied to %s: %s", copied.Name, copied.Id)

	if b.shareWith != "" {
		if err := b.share(ctx, copied.Id); err != nil {
			return nil, fmt.Errorf("%s: %w", copied.Name, err)
		}
	}

	pruned, err := b.prune(ctx, folderID)
	if err != nil {
		return nil, err
	}

	return &Result{
		FileID:   copied.Id,
		Name:     copied.Name,
		FolderID: folderID,
		Pruned:   pruned,
	}, nil
}

func (b *DriveBackup) ensureFolder(ctx context.Context) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, b.folderName)
	folders, err := b.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve backup folders: %w", err)
	}

	switch len(folders.Files) {
	case 0:
		log.Printf("backups folder %s not found, creating ...", b.folderName)
	case 1:
		return folders.Files[0].Id, nil
	default:
		log.Warnf("found %d backup folders named %s, will take the first one: %s", len(folders.Files), b.folderName, folders.Files[0].Id)
		return folders.Files[0].Id, nil
	}

	folder, err := b.service.
		Files.Create(&drive.File{
			Name:     b.folderName,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create backups folder: %w", err)
	}

	if b.shareWith != "" {
		if err := b.share(ctx, folder.Id); err != nil {
			return folder.Id, fmt.Errorf("backups folder: %w", err)
		}
	}

	log.Printf("new backups folder created: %s", folder.Id)
	return folder.Id, nil
}

func (b *DriveBackup) share(ctx context.Context, fileID string) error {
	permission, err := b.service.Permissions.
		Create(fileID, &drive.Permission{
			EmailAddress: b.shareWith,
			Type:         "user",
			Role:         "reader",
		}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("create permission: %w", err)
	}
	log.Debugf("permission %s created for %s", permission.Id, fileID)
	return nil
}

func (b *DriveBackup) prune(ctx context.Context, folderID string) (int, error) {
	if b.keepLast <= 0 {
		return 0, nil
	}

	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", folderID, folderMimeType)
	backups, err := b.service.
		Files.List().
		Q(query).
		Fields("files(id, name, createdTime)").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("list backups: %w", err)
	}

	files := backups.Files
	if len(files) <= b.keepLast {
		return 0, nil
	}

	// RFC3339 timestamps sort lexically
	sort.Slice(files, func(i, j int) bool {
		return files[i].CreatedTime > files[j].CreatedTime
	})

	pruned := 0
	for _, f := range files[b.keepLast:] {
		if err := b.service.Files.Delete(f.Id).Context(ctx).Do(); err != nil {
			return pruned, fmt.Errorf("delete old backup %s: %w", f.Name, err)
		}
		log.Printf("old backup removed: %s (%s)", f.Name, f.CreatedTime)
		pruned++
	}
	return pruned, nil
}
