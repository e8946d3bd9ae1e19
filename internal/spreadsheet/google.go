package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	htransport "google.golang.org/api/transport/http"

	"github.com/2beens/gymcycle/internal/telemetry/tracing"
)

const valueInputOption = "USER_ENTERED"

// GoogleStore talks to one spreadsheet through the Sheets v4 API.
type GoogleStore struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewGoogleStore authenticates with a service account JSON key.
func NewGoogleStore(ctx context.Context, spreadsheetID string, serviceAccountJSON []byte) (*GoogleStore, error) {
	if spreadsheetID == "" {
		return nil, errors.New("spreadsheet id empty")
	}

	authClient, _, err := htransport.NewClient(ctx,
		option.WithCredentialsJSON(serviceAccountJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("new google auth client: %w", err)
	}
	tracedClient := &http.Client{
		Transport: otelhttp.NewTransport(authClient.Transport),
	}

	return NewGoogleStoreWithOptions(ctx, spreadsheetID, option.WithHTTPClient(tracedClient))
}

func NewGoogleStoreWithOptions(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleStore, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("new sheets service: %w", err)
	}
	return &GoogleStore{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (s *GoogleStore) Get(ctx context.Context, rng string) (_ [][]string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetID, rng).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapGoogleErr(rng, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		cells := make([]string, 0, len(r))
		for _, c := range r {
			cells = append(cells, fmt.Sprint(c))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *GoogleStore) Append(ctx context.Context, rng string, row []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.append")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, rng, &sheets.ValueRange{
			Values: toInterfaceRows([][]string{row}),
		}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleErr(rng, err)
	}
	return nil
}

func (s *GoogleStore) Update(ctx context.Context, rng string, values [][]string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, rng, &sheets.ValueRange{
			Values: toInterfaceRows(values),
		}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleErr(rng, err)
	}
	return nil
}

func (s *GoogleStore) EnsureSheet(ctx context.Context, sheet string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.ensure-sheet")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	spreadsheet, err := s.service.Spreadsheets.
		Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("get spreadsheet: %w", err)
	}
	for _, sh := range spreadsheet.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheet {
			return false, nil
		}
	}

	_, err = s.service.Spreadsheets.
		BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{
				{AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: sheet},
				}},
			},
		}).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("add sheet %s: %w", sheet, err)
	}
	return true, nil
}

func (s *GoogleStore) Clear(ctx context.Context, rng string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sheets.clear")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = s.service.Spreadsheets.Values.
		Clear(s.spreadsheetID, rng, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return wrapGoogleErr(rng, err)
	}
	return nil
}

func toInterfaceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		cells := make([]interface{}, 0, len(r))
		for _, c := range r {
			cells = append(cells, c)
		}
		out = append(out, cells)
	}
	return out
}

func wrapGoogleErr(rng string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusBadRequest {
		// sheets answers 400 "Unable to parse range" for a missing tab
		return fmt.Errorf("range %s: %w: %s", rng, ErrSheetNotFound, apiErr.Message)
	}
	return fmt.Errorf("range %s: %w", rng, err)
}
