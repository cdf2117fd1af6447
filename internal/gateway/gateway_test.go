package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/devlink-app/agent/internal/models"
)

// stubAdapter returns fixed payloads and counts invocations.
type stubAdapter struct {
	statusCalls int
	infoCalls   int
}

func (s *stubAdapter) Status(ctx context.Context) models.StatusPayload {
	s.statusCalls++
	return models.StatusPayload{
		Thermal: models.ThermalNominal,
		Network: models.NetworkInfo{
			Status:     models.NetworkOnline,
			Transports: []models.Transport{models.TransportWifi},
		},
		UptimeSeconds: 12,
	}
}

func (s *stubAdapter) Info(ctx context.Context) models.InfoPayload {
	s.infoCalls++
	return models.InfoPayload{Name: "handset-3", Locale: "en-US"}
}

func TestDispatcherHandle(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantID   string
		wantCode int
	}{
		{"status request", `{"id":"r1","method":"device.status"}`, "r1", 0},
		{"info request", `{"id":"r2","method":"device.info"}`, "r2", 0},
		{"unknown method", `{"id":"r3","method":"device.reboot"}`, "r3", CodeMethodNotFound},
		{"missing method", `{"id":"r4"}`, "r4", CodeInvalidRequest},
		{"malformed json", `{"id":`, "", CodeParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(&stubAdapter{}, nil)
			resp := d.Handle(context.Background(), []byte(tt.raw))

			if resp.ID != tt.wantID {
				t.Errorf("id = %q, want %q", resp.ID, tt.wantID)
			}
			if tt.wantCode == 0 {
				if resp.Error != nil {
					t.Fatalf("unexpected error: %v", resp.Error)
				}
				if len(resp.Result) == 0 {
					t.Error("result is empty")
				}
				return
			}
			if resp.Error == nil {
				t.Fatal("expected error response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", resp.Error.Code, tt.wantCode)
			}
			if resp.Result != nil {
				t.Error("error response carries a result")
			}
		})
	}
}

func TestDispatcherHandle_AssignsMissingID(t *testing.T) {
	d := NewDispatcher(&stubAdapter{}, nil)
	resp := d.Handle(context.Background(), []byte(`{"method":"device.status"}`))

	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	if resp.ID == "" {
		t.Error("response id is empty, want assigned uuid")
	}
}

func TestDispatcherHandle_StatusResult(t *testing.T) {
	d := NewDispatcher(&stubAdapter{}, nil)
	resp := d.Handle(context.Background(), []byte(`{"id":"r1","method":"device.status"}`))

	var payload models.StatusPayload
	if err := json.Unmarshal(resp.Result, &payload); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if payload.Thermal != models.ThermalNominal {
		t.Errorf("thermal = %q, want nominal", payload.Thermal)
	}
	if payload.UptimeSeconds != 12 {
		t.Errorf("uptime = %d, want 12", payload.UptimeSeconds)
	}
}

func TestSessionRun(t *testing.T) {
	stub := &stubAdapter{}
	sess := NewSession(NewDispatcher(stub, nil), nil, 0)

	input := strings.Join([]string{
		`{"id":"a","method":"device.status"}`,
		``,
		`not json`,
		`{"id":"b","method":"device.info"}`,
	}, "\n")

	var out bytes.Buffer
	if err := sess.Run(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d response lines, want 3: %q", len(lines), out.String())
	}

	var first, second, third Response
	for i, dst := range []*Response{&first, &second, &third} {
		if err := json.Unmarshal([]byte(lines[i]), dst); err != nil {
			t.Fatalf("unmarshal line %d: %v", i, err)
		}
	}

	if first.ID != "a" || first.Error != nil {
		t.Errorf("first response = %+v, want ok for id a", first)
	}
	if second.Error == nil || second.Error.Code != CodeParseError {
		t.Errorf("second response = %+v, want parse error", second)
	}
	if third.ID != "b" || third.Error != nil {
		t.Errorf("third response = %+v, want ok for id b", third)
	}

	if stub.statusCalls != 1 || stub.infoCalls != 1 {
		t.Errorf("calls = %d/%d, want 1/1", stub.statusCalls, stub.infoCalls)
	}
}

func TestSessionRun_CancelledContext(t *testing.T) {
	sess := NewSession(NewDispatcher(&stubAdapter{}, nil), nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := sess.Run(ctx, strings.NewReader(`{"id":"a","method":"device.status"}`+"\n"), &out)
	if err == nil {
		t.Fatal("Run returned nil, want context error")
	}
}

func TestSessionID_Unique(t *testing.T) {
	d := NewDispatcher(&stubAdapter{}, nil)
	a := NewSession(d, nil, 0)
	b := NewSession(d, nil, 0)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("session ids %q and %q, want distinct non-empty", a.ID(), b.ID())
	}
}
