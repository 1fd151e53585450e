package scheduler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/chris/zendo/internal/store"
)

// reminderLead is how far ahead of an event its reminder goes out.
const reminderLead = 15 * time.Minute

type Scheduler struct {
	cron       *cron.Cron
	webhookURL string
	store      *store.Store
	dmSend     func(userID, content string) error
	dmUser     func() string

	mu       sync.Mutex
	reminded map[string]bool // event IDs already announced
	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a scheduler that delivers by DM when dmSend and dmUser are set
// and a user is known, and to webhookURL otherwise.
func New(st *store.Store, webhookURL string, dmSend func(userID, content string) error, dmUser func() string) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		webhookURL: webhookURL,
		store:      st,
		dmSend:     dmSend,
		dmUser:     dmUser,
		reminded:   make(map[string]bool),
		stop:       make(chan struct{}),
	}
}

// AddAgenda posts the day's agenda on every firing of cronExpr.
func (s *Scheduler) AddAgenda(cronExpr string) error {
	if _, err := s.cron.AddFunc(cronExpr, s.runAgenda); err != nil {
		return fmt.Errorf("invalid agenda cron %q: %w", cronExpr, err)
	}
	log.Printf("scheduler: agenda digest scheduled with cron %q", cronExpr)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()

	// Poll for events about to start every 60 seconds
	go func() {
		t := time.NewTicker(60 * time.Second)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				s.fireReminders()
			case <-s.stop:
				return
			}
		}
	}()

	log.Println("scheduler started")
}

// Stop halts the cron jobs and the reminder loop. It is safe to call more
// than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.cron.Stop().Done()
	})
}

func (s *Scheduler) runAgenda() {
	agenda := s.store.Agenda(s.store.Today())
	s.deliver("scheduler[agenda]", FormatAgenda(agenda, s.store.Now()))
	log.Printf("scheduler[agenda]: sent %d task(s), %d event(s)", len(agenda.Tasks), len(agenda.Events))
}

func (s *Scheduler) fireReminders() {
	for _, e := range s.dueReminders(s.store.Now()) {
		msg := fmt.Sprintf("⏰ Starting soon: %s at %s", e.Title, e.Time)
		if e.Location != "" {
			msg += " (" + e.Location + ")"
		}
		s.deliver(fmt.Sprintf("reminder[%s]", e.ID), msg)
	}
}

// dueReminders returns events starting within reminderLead of now that have
// not been announced yet, and marks them announced.
func (s *Scheduler) dueReminders(now time.Time) []store.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []store.Event
	for _, e := range s.store.Events() {
		if s.reminded[e.ID] {
			continue
		}
		start, err := time.ParseInLocation(store.DateLayout+" "+store.TimeLayout, e.Date+" "+e.Time, now.Location())
		if err != nil {
			continue
		}
		if !start.Before(now) && start.Sub(now) <= reminderLead {
			s.reminded[e.ID] = true
			due = append(due, e)
		}
	}
	return due
}

func (s *Scheduler) deliver(label, content string) {
	// Try DM first
	if s.dmSend != nil && s.dmUser != nil {
		if user := s.dmUser(); user != "" {
			if err := s.dmSend(user, content); err != nil {
				log.Printf("%s: DM send failed: %v", label, err)
			} else {
				return
			}
		}
	}
	// Fall back to webhook
	if s.webhookURL != "" {
		if err := postWebhook(s.webhookURL, content); err != nil {
			log.Printf("%s: webhook failed: %v", label, err)
		}
		return
	}
	log.Printf("%s: no delivery method available (no DM user and no webhook)", label)
}

func postWebhook(url, content string) error {
	payload := map[string]string{"content": content}
	body, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
