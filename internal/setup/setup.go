package setup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymcycle/internal/love"
	"github.com/2beens/gymcycle/internal/spreadsheet"
	"github.com/2beens/gymcycle/internal/workout"
)

var (
	ErrSheetIDMissing        = errors.New("sheet id missing")
	ErrServiceAccountMissing = errors.New("service account json missing")
)

// CheckEnv validates the spreadsheet id and the service account key and
// returns the service account email the sheet has to be shared with.
func CheckEnv(sheetID, serviceAccountJSON string) (string, error) {
	if sheetID == "" {
		return "", ErrSheetIDMissing
	}
	if serviceAccountJSON == "" || serviceAccountJSON == "{}" {
		return "", ErrServiceAccountMissing
	}

	var key struct {
		Type        string `json:"type"`
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
	}
	if err := json.Unmarshal([]byte(serviceAccountJSON), &key); err != nil {
		return "", fmt.Errorf("service account json invalid: %w", err)
	}
	if key.Type != "service_account" || key.ClientEmail == "" || key.PrivateKey == "" {
		return "", errors.New("service account json must have type=service_account, client_email and private_key")
	}
	return key.ClientEmail, nil
}

func ensureSheets(ctx context.Context, store spreadsheet.AdminStore, schemas ...spreadsheet.Schema) error {
	for _, schema := range schemas {
		created, err := store.EnsureSheet(ctx, schema.Sheet)
		if err != nil {
			return fmt.Errorf("ensure sheet %s: %w", schema.Sheet, err)
		}
		if created {
			log.Infof("created sheet: %s", schema.Sheet)
		} else {
			log.Debugf("sheet exists: %s", schema.Sheet)
		}
	}
	return nil
}

// reseed clears the sheet and writes the header plus rows.
func reseed(ctx context.Context, store spreadsheet.AdminStore, schema spreadsheet.Schema, rows [][]string) error {
	if err := store.Clear(ctx, schema.Sheet+"!A1:Z1000"); err != nil {
		return fmt.Errorf("clear %s: %w", schema.Sheet, err)
	}
	values := append([][]string{schema.Header()}, rows...)
	if err := store.Update(ctx, schema.AppendRange(), values); err != nil {
		return fmt.Errorf("seed %s: %w", schema.Sheet, err)
	}
	log.Infof("%s: %d rows imported", schema.Sheet, len(rows))
	return nil
}

func ensureHeader(ctx context.Context, store spreadsheet.Store, sheet string, columns []string) error {
	added, err := spreadsheet.EnsureHeader(ctx, store, sheet, columns)
	if err != nil {
		return err
	}
	if len(added) > 0 {
		log.Infof("%s: added columns %v", sheet, added)
	}
	return nil
}

// Fitness creates the fitness sheets, reseeds sessions and exercises and makes
// sure the log sheets have their header. Logged history is kept.
func Fitness(ctx context.Context, store spreadsheet.AdminStore) error {
	if err := ensureSheets(ctx, store,
		workout.SessionsSchema,
		workout.ExercisesSchema,
		workout.LogSchema,
		workout.ExerciseCheckSchema,
	); err != nil {
		return err
	}

	if err := reseed(ctx, store, workout.SessionsSchema, sessionRows); err != nil {
		return err
	}
	if err := reseed(ctx, store, workout.ExercisesSchema, exerciseRows); err != nil {
		return err
	}

	if err := ensureHeader(ctx, store, workout.LogSchema.Sheet, workout.LogSchema.Header()); err != nil {
		return err
	}
	return ensureHeader(ctx, store, workout.ExerciseCheckSchema.Sheet,
		[]string{"date", "session_id", "exercise_id", "checked"},
	)
}

// Migrate creates Bodyweight_Log and adds the weight and reps columns to Exercise_Check.
func Migrate(ctx context.Context, store spreadsheet.AdminStore) error {
	if err := ensureSheets(ctx, store, workout.BodyweightSchema); err != nil {
		return err
	}
	if err := ensureHeader(ctx, store, workout.BodyweightSchema.Sheet, workout.BodyweightSchema.Header()); err != nil {
		return err
	}
	return ensureHeader(ctx, store, workout.ExerciseCheckSchema.Sheet, []string{"weight", "reps"})
}

// Love creates the inlove sheets and writes their headers. The config sheet
// is overwritten with the defaults.
func Love(ctx context.Context, store spreadsheet.AdminStore) error {
	if err := ensureSheets(ctx, store, love.Schemas...); err != nil {
		return err
	}

	config := append([][]string{love.ConfigSchema.Header()}, love.DefaultConfig...)
	if err := store.Update(ctx, love.ConfigSchema.AppendRange(), config); err != nil {
		return fmt.Errorf("write %s: %w", love.ConfigSchema.Sheet, err)
	}

	for _, schema := range love.Schemas[1:] {
		if err := ensureHeader(ctx, store, schema.Sheet, schema.Header()); err != nil {
			return err
		}
	}

	quotes, err := store.Get(ctx, love.QuotesSchema.ReadRange())
	if err != nil {
		return fmt.Errorf("get %s: %w", love.QuotesSchema.Sheet, err)
	}
	if len(quotes) <= 1 {
		if err := store.Append(ctx, love.QuotesSchema.AppendRange(), defaultQuote); err != nil {
			return fmt.Errorf("append %s: %w", love.QuotesSchema.Sheet, err)
		}
	}
	return nil
}

type loveWriter interface {
	AddTimelineEvent(ctx context.Context, event love.TimelineEvent) (*love.TimelineEvent, error)
	AddDream(ctx context.Context, task, imageURL string) (*love.Dream, error)
	SendMail(ctx context.Context, sender, title, content string) (*love.Mail, error)
}

// SeedLove appends the sample timeline, dreams and letters.
func SeedLove(ctx context.Context, repo loveWriter) error {
	for _, event := range sampleTimeline {
		if _, err := repo.AddTimelineEvent(ctx, event); err != nil {
			return err
		}
	}
	for _, dream := range sampleDreams {
		if _, err := repo.AddDream(ctx, dream.Task, dream.ImageURL); err != nil {
			return err
		}
	}
	for _, mail := range sampleMails {
		if _, err := repo.SendMail(ctx, mail.Sender, mail.Title, mail.Content); err != nil {
			return err
		}
	}
	log.Infof("seeded %d timeline events, %d dreams, %d letters", len(sampleTimeline), len(sampleDreams), len(sampleMails))
	return nil
}
