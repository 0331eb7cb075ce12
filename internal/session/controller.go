package session

import (
	"context"
	"fmt"
	"time"

	"github.com/tangolearn/tango/internal/audio"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/srs"
	"github.com/tangolearn/tango/internal/words"
)

// Feedback is what the presenter shows after an answer: the updated card,
// whether it stays in today's queue, and the next-review label.
type Feedback struct {
	Card            srs.Card   `json:"card"`
	Answer          srs.Answer `json:"answer"`
	Correct         bool       `json:"correct"`
	NextReviewLabel string     `json:"nextReviewLabel"`
	Requeued        bool       `json:"requeued"`
}

// Controller orchestrates one study session. Every learner action flows
// through Answer followed by Advance: Answer runs the full data mutation
// synchronously, Advance is the explicit continuation the presenter invokes
// once its card transition has finished. The reentrancy guard is held from
// Answer until Advance completes, so a second rapid answer is ignored rather
// than applied to a half-updated queue.
type Controller struct {
	store    words.Store
	audio    *audio.Manager
	logs     review.Repository
	clock    srs.Clock
	settings Settings

	marking bool

	queue            []srs.Card
	currentIndex     int
	todaysNewCards   int
	counts           Counts
	processed        []srs.Card
	stats            Stats
	calendarRevision int
}

// Option configures a Controller.
type Option func(*Controller)

// WithReviewLog records every answer into the given repository.
func WithReviewLog(logs review.Repository) Option {
	return func(c *Controller) {
		c.logs = logs
	}
}

// WithClock overrides the wall clock.
func WithClock(clock srs.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// NewController creates a Controller over the given word store. Call Start
// to build the initial queue.
func NewController(store words.Store, audioManager *audio.Manager, settings Settings, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		audio:    audioManager,
		clock:    srs.SystemClock(),
		settings: settings,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start builds the initial session queue from the word store.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.refill(ctx, c.settings.NewCardsPerDay); err != nil {
		return fmt.Errorf("refill() > %w", err)
	}
	c.counts = countQueue(c.queue)
	return nil
}

// Current returns the card under review, or nil when the queue is exhausted.
func (c *Controller) Current() *srs.Card {
	if c.currentIndex >= len(c.queue) {
		return nil
	}
	card := c.queue[c.currentIndex]
	return &card
}

// Answer applies the learner's answer to the current card. It returns nil
// feedback when the call is ignored: either a previous mark is still being
// processed or there is no current card. The queue index is not advanced
// here; the answered card leaves its slot, so the next card slides into
// place, and Advance finishes the transition.
func (c *Controller) Answer(ctx context.Context, answer srs.Answer) (*Feedback, error) {
	if c.marking {
		return nil, nil
	}
	current := c.Current()
	if current == nil {
		return nil, nil
	}
	c.marking = true

	// The playback handle must be stopped before the card leaves the screen.
	if c.audio != nil {
		c.audio.Stop()
	}

	now := c.clock.Now()
	previousCategory := category(current.Scheduling)
	wasNew := current.Scheduling != nil && current.Scheduling.IsNew

	updated := srs.NextReview(*current, answer, now)
	card := *current
	card.Scheduling = &updated

	c.counts.add(previousCategory, -1)
	if updated.Due.Sub(now) <= 24*time.Hour {
		c.counts.add(category(&updated), 1)
	}

	if err := c.store.Put(ctx, card); err != nil {
		c.marking = false
		return nil, fmt.Errorf("store.Put(%s) > %w", card.Key, err)
	}

	if c.logs != nil {
		log := review.Log{
			SenseKey:   card.Key,
			Answer:     string(answer),
			Interval:   updated.Interval,
			Due:        updated.Due,
			ReviewedAt: now,
		}
		if err := c.logs.Create(ctx, &log); err != nil {
			c.marking = false
			return nil, fmt.Errorf("logs.Create(%s) > %w", card.Key, err)
		}
	}

	// A card stays in today's queue only while it is still on
	// minute-granularity steps and due before the day ends. Otherwise it
	// graduates out of the session and onto the calendar.
	requeued := srs.MinuteGranularity(updated.Interval) &&
		!updated.Due.After(srs.EndOfDay(now))
	c.queue = append(c.queue[:c.currentIndex], c.queue[c.currentIndex+1:]...)
	if requeued {
		c.queue = append(c.queue, card)
	} else {
		c.processed = append(c.processed, card)
		c.calendarRevision++
	}

	c.stats.CardsReviewed++
	if answer.IsCorrect() {
		c.stats.CorrectAnswers++
	}
	if wasNew {
		c.todaysNewCards++
	}

	return &Feedback{
		Card:            card,
		Answer:          answer,
		Correct:         answer.IsCorrect(),
		NextReviewLabel: srs.FormatNextReview(updated.Due, now),
		Requeued:        requeued,
	}, nil
}

// Advance completes the transition started by Answer and releases the
// reentrancy guard. When the queue is exhausted it refills from the full
// pool, first without and then with the waiting-learning fallback.
func (c *Controller) Advance(ctx context.Context) error {
	if !c.marking {
		return nil
	}
	defer func() {
		c.marking = false
	}()

	if c.currentIndex >= len(c.queue) {
		c.currentIndex = 0
	}
	if len(c.queue) > 0 {
		return nil
	}

	maxNew := c.settings.NewCardsPerDay - c.todaysNewCards
	if maxNew < 0 {
		maxNew = 0
	}
	if err := c.refill(ctx, maxNew); err != nil {
		return fmt.Errorf("refill() > %w", err)
	}
	c.counts = countQueue(c.queue)
	return nil
}

// refill rebuilds the queue from the full pool, excluding cards already
// processed this session. The waiting-learning fallback is tried only when
// the strict selection comes up empty.
func (c *Controller) refill(ctx context.Context, maxNew int) error {
	pool, err := c.store.All(ctx)
	if err != nil {
		return fmt.Errorf("store.All() > %w", err)
	}
	pool = c.withoutProcessed(pool)

	now := c.clock.Now()
	queue := srs.DueCards(pool, srs.QueueOptions{MaxNew: maxNew}, now)
	if len(queue) == 0 {
		queue = srs.DueCards(pool, srs.QueueOptions{MaxNew: maxNew, IncludeWaiting: true}, now)
	}

	if c.settings.MaxReviewsPerDay > 0 && len(queue) > c.settings.MaxReviewsPerDay {
		queue = queue[:c.settings.MaxReviewsPerDay]
	}

	c.queue = queue
	c.currentIndex = 0
	return nil
}

func (c *Controller) withoutProcessed(pool []srs.Card) []srs.Card {
	if len(c.processed) == 0 {
		return pool
	}
	done := make(map[string]struct{}, len(c.processed))
	for _, card := range c.processed {
		done[card.Key] = struct{}{}
	}
	out := pool[:0:0]
	for _, card := range pool {
		if _, ok := done[card.Key]; ok {
			continue
		}
		out = append(out, card)
	}
	return out
}

// Queue returns a copy of the remaining session queue.
func (c *Controller) Queue() []srs.Card {
	out := make([]srs.Card, len(c.queue))
	copy(out, c.queue)
	return out
}

// Processed returns the cards that graduated out of today's queue.
func (c *Controller) Processed() []srs.Card {
	out := make([]srs.Card, len(c.processed))
	copy(out, c.processed)
	return out
}

// Counts returns the live header tallies.
func (c *Controller) Counts() Counts {
	return c.counts
}

// Stats returns the session statistics.
func (c *Controller) Stats() Stats {
	return c.stats
}

// TodaysNewCards returns how many new cards were introduced this session.
func (c *Controller) TodaysNewCards() int {
	return c.todaysNewCards
}

// CalendarRevision increments whenever a card graduates, signalling the
// calendar projection should be recomputed.
func (c *Controller) CalendarRevision() int {
	return c.calendarRevision
}

// Remaining returns how many cards are left in the queue.
func (c *Controller) Remaining() int {
	return len(c.queue)
}
