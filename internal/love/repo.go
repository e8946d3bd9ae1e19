package love

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/2beens/gymcycle/internal/spreadsheet"
	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

const passcodeConfigKey = "passcode"

// Repo reads and writes the Love_* sheets.
type Repo struct {
	store spreadsheet.Store
	// now and randIntN can be swapped in tests
	now      func() time.Time
	randIntN func(n int) int

	idMutex sync.Mutex
	lastID  int64
}

func NewRepo(store spreadsheet.Store) *Repo {
	return &Repo{
		store:    store,
		now:      time.Now,
		randIntN: rand.IntN,
	}
}

func (r *Repo) readTable(ctx context.Context, schema spreadsheet.Schema) (*spreadsheet.Table, error) {
	raw, err := r.store.Get(ctx, schema.ReadRange())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", schema.Sheet, err)
	}
	table, err := spreadsheet.ParseTable(schema, raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", schema.Sheet, err)
	}
	return table, nil
}

func (r *Repo) append(ctx context.Context, schema spreadsheet.Schema, values map[string]string) error {
	if err := r.store.Append(ctx, schema.AppendRange(), schema.Values(values)); err != nil {
		return fmt.Errorf("append %s: %w", schema.Sheet, err)
	}
	return nil
}

func (r *Repo) configRows(ctx context.Context) (map[string]string, error) {
	rows, err := r.store.Get(ctx, ConfigSchema.ReadRange())
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", ConfigSchema.Sheet, err)
	}

	config := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" || row[1] == "" {
			continue
		}
		config[key] = row[1]
	}
	// header row
	if config["key"] == "value" {
		delete(config, "key")
	}
	return config, nil
}

// Config returns the key/value settings of the app. The passcode is never included.
func (r *Repo) Config(ctx context.Context) (_ map[string]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.config")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	config, err := r.configRows(ctx)
	if err != nil {
		return nil, err
	}
	delete(config, passcodeConfigKey)
	return config, nil
}

// VerifyPasscode compares against the passcode row of Love_Config, DefaultPasscode when missing.
func (r *Repo) VerifyPasscode(ctx context.Context, passcode string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.verify-passcode")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	config, err := r.configRows(ctx)
	if err != nil {
		return false, err
	}
	expected, ok := config[passcodeConfigKey]
	if !ok {
		expected = DefaultPasscode
	}
	expected = strings.TrimSpace(expected)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.TrimSpace(passcode))) == 1, nil
}

// RandomQuote returns nil when there are no quotes.
func (r *Repo) RandomQuote(ctx context.Context) (_ *Quote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.random-quote")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, QuotesSchema)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, nil
	}

	row := table.Rows[r.randIntN(len(table.Rows))]
	return &Quote{
		Quote:  row.String("quote"),
		Author: row.String("author"),
	}, nil
}

// Messages returns the last MessagesLimit messages, oldest first.
func (r *Repo) Messages(ctx context.Context) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.messages")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, MessagesSchema)
	if err != nil {
		return nil, err
	}

	rows := table.Rows
	if len(rows) > MessagesLimit {
		rows = rows[len(rows)-MessagesLimit:]
	}
	messages := make([]Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, Message{
			Timestamp: row.String("timestamp"),
			Sender:    row.String("sender"),
			Content:   row.String("content"),
			Type:      row.String("type"),
		})
	}
	return messages, nil
}

func (r *Repo) SendMessage(ctx context.Context, sender, content, msgType string) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.send-message")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if msgType == "" {
		msgType = "text"
	}
	msg := &Message{
		Timestamp: r.timestamp(),
		Sender:    sender,
		Content:   content,
		Type:      msgType,
	}
	if err := r.append(ctx, MessagesSchema, map[string]string{
		"timestamp": msg.Timestamp,
		"sender":    msg.Sender,
		"content":   msg.Content,
		"type":      msg.Type,
	}); err != nil {
		return nil, err
	}
	return msg, nil
}

// Timeline returns the events, most recent date first.
func (r *Repo) Timeline(ctx context.Context) (_ []TimelineEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.timeline")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, TimelineSchema)
	if err != nil {
		return nil, err
	}

	events := make([]TimelineEvent, 0, len(table.Rows))
	for _, row := range table.Rows {
		events = append(events, TimelineEvent{
			Date:        row.String("date"),
			Title:       row.String("title"),
			Description: row.String("description"),
			ImageURL:    row.String("image_url"),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return parseEventDate(events[i].Date).After(parseEventDate(events[j].Date))
	})
	return events, nil
}

func (r *Repo) AddTimelineEvent(ctx context.Context, event TimelineEvent) (_ *TimelineEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.add-timeline-event")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := r.append(ctx, TimelineSchema, map[string]string{
		"date":        event.Date,
		"title":       event.Title,
		"description": event.Description,
		"image_url":   event.ImageURL,
	}); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repo) DreamList(ctx context.Context) (_ []Dream, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.dream-list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, DreamListSchema)
	if err != nil {
		return nil, err
	}

	dreams := make([]Dream, 0, len(table.Rows))
	for _, row := range table.Rows {
		dreams = append(dreams, Dream{
			ID:          row.String("id"),
			Task:        row.String("task"),
			IsCompleted: ParseFlag(row.String("is_completed")),
			ImageURL:    row.String("image_url"),
		})
	}
	return dreams, nil
}

func (r *Repo) AddDream(ctx context.Context, task, imageURL string) (_ *Dream, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.add-dream")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	dream := &Dream{
		ID:          r.newID(),
		Task:        task,
		IsCompleted: false,
		ImageURL:    imageURL,
	}
	if err := r.append(ctx, DreamListSchema, map[string]string{
		"id":           dream.ID,
		"task":         dream.Task,
		"is_completed": dream.IsCompleted.String(),
		"image_url":    dream.ImageURL,
	}); err != nil {
		return nil, err
	}
	return dream, nil
}

// ToggleDream overwrites the is_completed cell of the dream. Reports false when the id is unknown.
func (r *Repo) ToggleDream(ctx context.Context, id string, completed bool) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.toggle-dream")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, DreamListSchema)
	if err != nil {
		return false, err
	}
	col, _ := table.ColumnIndex("is_completed")

	id = strings.TrimSpace(id)
	for _, row := range table.Rows {
		if row.String("id") != id {
			continue
		}
		cell := spreadsheet.CellRef(DreamListSchema.Sheet, col, row.Number)
		if err := r.store.Update(ctx, cell, [][]string{{Flag(completed).String()}}); err != nil {
			return false, fmt.Errorf("update %s: %w", cell, err)
		}
		return true, nil
	}
	return false, nil
}

// Mailbox returns the letters, newest first.
func (r *Repo) Mailbox(ctx context.Context) (_ []Mail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.mailbox")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	table, err := r.readTable(ctx, MailboxSchema)
	if err != nil {
		return nil, err
	}

	mails := make([]Mail, 0, len(table.Rows))
	for i := len(table.Rows) - 1; i >= 0; i-- {
		row := table.Rows[i]
		mails = append(mails, Mail{
			ID:        row.String("id"),
			Timestamp: row.String("timestamp"),
			Sender:    row.String("sender"),
			Title:     row.String("title"),
			Content:   row.String("content"),
			IsRead:    ParseFlag(row.String("is_read")),
		})
	}
	return mails, nil
}

func (r *Repo) SendMail(ctx context.Context, sender, title, content string) (_ *Mail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.love.send-mail")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	mail := &Mail{
		ID:        r.newID(),
		Timestamp: r.timestamp(),
		Sender:    sender,
		Title:     title,
		Content:   content,
		IsRead:    false,
	}
	if err := r.append(ctx, MailboxSchema, map[string]string{
		"id":        mail.ID,
		"timestamp": mail.Timestamp,
		"sender":    mail.Sender,
		"title":     mail.Title,
		"content":   mail.Content,
		"is_read":   mail.IsRead.String(),
	}); err != nil {
		return nil, err
	}
	return mail, nil
}

// ids are unix milliseconds, bumped when two rows land in the same millisecond
func (r *Repo) newID() string {
	r.idMutex.Lock()
	defer r.idMutex.Unlock()
	id := r.now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}

func (r *Repo) timestamp() string {
	return r.now().UTC().Format("2006-01-02T15:04:05.000Z")
}

var eventDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
}

// unparseable dates sort last
func parseEventDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
