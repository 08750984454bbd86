package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fieldside/clubmetrics/internal/domain/model"
)

const defaultTimeout = 30 * time.Second

// client posts record changes to the service.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// recordEnvelope mirrors the POST /records request body.
type recordEnvelope struct {
	RecordID string           `json:"record_id"`
	Kind     model.RecordKind `json:"kind"`

	Member       *model.Member       `json:"member,omitempty"`
	Event        *model.Event        `json:"event,omitempty"`
	Attendance   *model.Attendance   `json:"attendance,omitempty"`
	Contribution *model.Contribution `json:"contribution,omitempty"`
	FeePayment   *model.FeePayment   `json:"fee_payment,omitempty"`
}

// PostClub submits every record of a generated club and returns how many
// were accepted.
func (c *client) PostClub(ctx context.Context, club *Club) (int, error) {
	posted := 0
	post := func(env recordEnvelope) error {
		if err := c.post(ctx, env); err != nil {
			return err
		}
		posted++
		return nil
	}

	for i := range club.Members {
		m := club.Members[i]
		if err := post(recordEnvelope{RecordID: "member-" + m.ID, Kind: model.KindMember, Member: &m}); err != nil {
			return posted, err
		}
	}
	for i := range club.Events {
		e := club.Events[i]
		if err := post(recordEnvelope{RecordID: "event-" + e.ID, Kind: model.KindEvent, Event: &e}); err != nil {
			return posted, err
		}
	}
	for i := range club.Attendance {
		a := club.Attendance[i]
		if err := post(recordEnvelope{RecordID: "attendance-" + a.ID, Kind: model.KindAttendance, Attendance: &a}); err != nil {
			return posted, err
		}
	}
	for i := range club.Contributions {
		con := club.Contributions[i]
		if err := post(recordEnvelope{RecordID: "contribution-" + con.ID, Kind: model.KindContribution, Contribution: &con}); err != nil {
			return posted, err
		}
	}
	for i := range club.FeePayments {
		p := club.FeePayments[i]
		if err := post(recordEnvelope{RecordID: "fee-" + p.ID, Kind: model.KindFeePayment, FeePayment: &p}); err != nil {
			return posted, err
		}
	}
	return posted, nil
}

func (c *client) post(ctx context.Context, env recordEnvelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/records", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post record: %w", err)
	}
	defer resp.Body.Close()

	// Backpressure is retried once after a short pause; anything else
	// non-2xx fails the run.
	if resp.StatusCode == http.StatusTooManyRequests {
		_, _ = io.Copy(io.Discard, resp.Body)
		time.Sleep(100 * time.Millisecond)
		return c.post(ctx, env)
	}
	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("record rejected: status %d: %s", resp.StatusCode, string(msg))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
