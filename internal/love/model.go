package love

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/gymcycle/internal/spreadsheet"
)

// DefaultPasscode unlocks the app when Love_Config has no passcode row.
const DefaultPasscode = "20032025"

const MessagesLimit = 50

// Flag is a checkbox cell. It travels as "TRUE"/"FALSE" on the wire,
// the web app compares against those strings.
type Flag bool

func ParseFlag(raw string) Flag {
	return Flag(strings.EqualFold(strings.TrimSpace(raw), "TRUE"))
}

func (f Flag) String() string {
	if f {
		return "TRUE"
	}
	return "FALSE"
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts a JSON bool as well as the "TRUE"/"FALSE" strings.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag: expected bool or string, got %s", data)
	}
	*f = ParseFlag(s)
	return nil
}

type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

var DefaultQuote = Quote{Quote: "Love is in the air", Author: "Unknown"}

type Message struct {
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

type TimelineEvent struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Dream struct {
	ID          string `json:"id"`
	Task        string `json:"task"`
	IsCompleted Flag   `json:"is_completed"`
	ImageURL    string `json:"image_url"`
}

type Mail struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	IsRead    Flag   `json:"is_read"`
}

var (
	ConfigSchema = spreadsheet.Schema{
		Sheet: "Love_Config",
		Columns: []spreadsheet.Column{
			{Name: "key"},
			{Name: "value"},
		},
		MaxRows: 20,
	}
	QuotesSchema = spreadsheet.Schema{
		Sheet: "Love_Quotes",
		Columns: []spreadsheet.Column{
			{Name: "quote", Required: true},
			{Name: "author"},
		},
		SkipIfEmpty: "quote",
		MaxRows:     999,
	}
	MessagesSchema = spreadsheet.Schema{
		Sheet: "Love_Messages",
		Columns: []spreadsheet.Column{
			{Name: "timestamp", Required: true},
			{Name: "sender"},
			{Name: "content"},
			{Name: "type"},
		},
	}
	TimelineSchema = spreadsheet.Schema{
		Sheet: "Love_Timeline",
		Columns: []spreadsheet.Column{
			{Name: "date", Required: true},
			{Name: "title"},
			{Name: "description"},
			{Name: "image_url"},
		},
		MaxRows: 999,
	}
	DreamListSchema = spreadsheet.Schema{
		Sheet: "Love_DreamList",
		Columns: []spreadsheet.Column{
			{Name: "id", Required: true},
			{Name: "task"},
			{Name: "is_completed", Required: true},
			{Name: "image_url"},
		},
		SkipIfEmpty: "id",
		MaxRows:     999,
	}
	MailboxSchema = spreadsheet.Schema{
		Sheet: "Love_Mailbox",
		Columns: []spreadsheet.Column{
			{Name: "id", Required: true},
			{Name: "timestamp"},
			{Name: "sender"},
			{Name: "title"},
			{Name: "content"},
			{Name: "is_read"},
		},
	}

	Schemas = []spreadsheet.Schema{
		ConfigSchema,
		QuotesSchema,
		MessagesSchema,
		TimelineSchema,
		DreamListSchema,
		MailboxSchema,
	}
)

// DefaultConfig is written by fitadmin setup-love.
var DefaultConfig = [][]string{
	{"start_date", "2024-01-01"},
	{"male_name", "Romeo"},
	{"female_name", "Juliet"},
	{"theme_color", "#ffccd5"},
	{"passcode", DefaultPasscode},
	{"music_url", "https://www.youtube.com/watch?v=izGwDsrQ1eQ"},
	{"music_autoplay", "true"},
}
