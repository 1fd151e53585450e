package scheduler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/zendo/internal/store"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.NewSeeded(func() time.Time { return fixedNow })
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return st
}

func TestFormatAgenda(t *testing.T) {
	st := openTestStore(t)
	got := FormatAgenda(st.Agenda(st.Today()), fixedNow)

	want := strings.Join([]string{
		"📅 Agenda for Fri Oct 16",
		"",
		"Tasks due:",
		"- [ ] Review project requirements (high)",
		"- [x] Buy groceries (medium)",
		"",
		"Events:",
		"- 14:00 Client Meeting @ Zoom",
	}, "\n")
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestFormatAgenda_Empty(t *testing.T) {
	got := FormatAgenda(store.Agenda{Date: "2026-12-25"}, fixedNow)
	if !strings.HasSuffix(got, "Nothing scheduled today. Enjoy the calm.") {
		t.Errorf("unexpected empty agenda %q", got)
	}
}

func TestAddAgenda_InvalidCron(t *testing.T) {
	s := New(openTestStore(t), "", nil, nil)
	if err := s.AddAgenda("not a cron"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
	if err := s.AddAgenda("0 8 * * *"); err != nil {
		t.Errorf("expected valid cron to be accepted, got %v", err)
	}
}

func TestDueReminders(t *testing.T) {
	s := New(openTestStore(t), "", nil, nil)

	if got := s.dueReminders(time.Date(2026, 10, 16, 13, 40, 0, 0, time.UTC)); len(got) != 0 {
		t.Errorf("expected nothing 20 minutes out, got %d", len(got))
	}
	got := s.dueReminders(time.Date(2026, 10, 16, 13, 50, 0, 0, time.UTC))
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("expected e1 due, got %+v", got)
	}
	if again := s.dueReminders(time.Date(2026, 10, 16, 13, 55, 0, 0, time.UTC)); len(again) != 0 {
		t.Errorf("expected each event announced once, got %d", len(again))
	}
	if past := s.dueReminders(time.Date(2026, 10, 16, 14, 5, 0, 0, time.UTC)); len(past) != 0 {
		t.Errorf("expected no reminders for started events, got %d", len(past))
	}
}

func TestDeliver_PrefersDM(t *testing.T) {
	var sentTo, sent string
	dm := func(user, content string) error { sentTo, sent = user, content; return nil }

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	s := New(openTestStore(t), srv.URL, dm, func() string { return "42" })
	s.deliver("test", "hello")

	if sentTo != "42" || sent != "hello" {
		t.Errorf("expected DM to 42, got %q to %q", sent, sentTo)
	}
	if hits != 0 {
		t.Errorf("expected webhook unused, got %d hits", hits)
	}
}

func TestDeliver_FallsBackToWebhook(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	defer srv.Close()

	tests := []struct {
		name   string
		dmSend func(string, string) error
		dmUser func() string
	}{
		{"no DM configured", nil, nil},
		{"no known user", func(string, string) error { return nil }, func() string { return "" }},
		{"DM fails", func(string, string) error { return errors.New("closed") }, func() string { return "42" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			s := New(openTestStore(t), srv.URL, tt.dmSend, tt.dmUser)
			s.deliver("test", "agenda")
			if got["content"] != "agenda" {
				t.Errorf("expected webhook content 'agenda', got %v", got)
			}
		})
	}
}

func TestPostWebhook_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if err := postWebhook(srv.URL, "x"); err == nil {
		t.Error("expected error for 429")
	}
}

func TestStop_Twice(t *testing.T) {
	s := New(openTestStore(t), "", nil, nil)
	s.Start()
	s.Stop()
	s.Stop()
}
