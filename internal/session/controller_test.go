package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tangolearn/tango/internal/audio"
	mock_audio "github.com/tangolearn/tango/internal/mocks/audio"
	mock_review "github.com/tangolearn/tango/internal/mocks/review"
	mock_words "github.com/tangolearn/tango/internal/mocks/words"
	"github.com/tangolearn/tango/internal/review"
	"github.com/tangolearn/tango/internal/srs"
	"github.com/tangolearn/tango/internal/words"
)

var sessionNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func learningCard(key string, interval int, due time.Time) srs.Card {
	return srs.Card{
		Key:  key,
		Word: key,
		Scheduling: &srs.Scheduling{
			Interval: interval,
			Status:   srs.StatusLearning,
			Due:      due,
		},
	}
}

func storeWith(t *testing.T, cards ...srs.Card) *words.MemoryStore {
	t.Helper()
	store := words.NewMemoryStore()
	for _, card := range cards {
		require.NoError(t, store.Put(context.Background(), card))
	}
	return store
}

func startedController(t *testing.T, store words.Store, settings Settings, opts ...Option) *Controller {
	t.Helper()
	opts = append(opts, WithClock(srs.FixedClock(sessionNow)))
	controller := NewController(store, audio.NewManager(), settings, opts...)
	require.NoError(t, controller.Start(context.Background()))
	return controller
}

func TestControllerAnswerRequeuesMinuteGranularityCard(t *testing.T) {
	// Correct on interval 1 yields interval 2, due in 10 minutes: still
	// today's business, so the card goes to the back of the queue.
	store := storeWith(t,
		learningCard("alpha", 1, sessionNow.Add(-5*time.Minute)),
		learningCard("beta", 1, sessionNow.Add(-time.Minute)),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})
	require.Equal(t, 2, controller.Remaining())

	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, feedback)

	assert.True(t, feedback.Requeued)
	assert.Equal(t, 2, feedback.Card.Scheduling.Interval)
	assert.Equal(t, "10 min", feedback.NextReviewLabel)

	require.NoError(t, controller.Advance(context.Background()))
	queue := controller.Queue()
	require.Len(t, queue, 2)
	assert.Equal(t, "beta", queue[0].Key)
	assert.Equal(t, "alpha", queue[1].Key)
	assert.Empty(t, controller.Processed())
	assert.Zero(t, controller.CalendarRevision())
}

func TestControllerAnswerGraduatesDayGranularityCard(t *testing.T) {
	// Correct on interval 2 yields interval 3, due tomorrow: the card
	// leaves the session and the calendar needs recomputing.
	store := storeWith(t,
		learningCard("alpha", 2, sessionNow.Add(-5*time.Minute)),
		learningCard("beta", 1, sessionNow.Add(-time.Minute)),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, feedback)

	assert.False(t, feedback.Requeued)
	assert.Equal(t, 3, feedback.Card.Scheduling.Interval)
	assert.Equal(t, "1 day", feedback.NextReviewLabel)

	require.NoError(t, controller.Advance(context.Background()))
	queue := controller.Queue()
	require.Len(t, queue, 1)
	assert.Equal(t, "beta", queue[0].Key)

	processed := controller.Processed()
	require.Len(t, processed, 1)
	assert.Equal(t, "alpha", processed[0].Key)
	assert.Equal(t, 1, controller.CalendarRevision())
}

func TestControllerAnswerGraduatesWhenMinuteStepCrossesMidnight(t *testing.T) {
	// Ten minutes before midnight, interval 2's due date lands tomorrow:
	// minute granularity alone is not enough to stay in the queue.
	nearMidnight := time.Date(2026, 3, 10, 23, 55, 0, 0, time.Local)
	store := storeWith(t, learningCard("alpha", 1, nearMidnight.Add(-time.Minute)))

	controller := NewController(store, audio.NewManager(), Settings{NewCardsPerDay: 5},
		WithClock(srs.FixedClock(nearMidnight)))
	require.NoError(t, controller.Start(context.Background()))

	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, feedback)

	assert.Equal(t, 2, feedback.Card.Scheduling.Interval)
	assert.False(t, feedback.Requeued)
	require.Len(t, controller.Processed(), 1)
}

func TestControllerAnswerPersistsUpdatedCard(t *testing.T) {
	store := storeWith(t, learningCard("alpha", 2, sessionNow.Add(-time.Minute)))
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	_, err := controller.Answer(context.Background(), srs.AnswerEasy)
	require.NoError(t, err)

	stored, err := store.Get(context.Background(), "alpha")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 4, stored.Scheduling.Interval)
	assert.Equal(t, srs.StatusLearning, stored.Scheduling.Status)
	assert.Equal(t, srs.StartOfDay(sessionNow.AddDate(0, 0, 3)), stored.Scheduling.Due)
}

func TestControllerReentrancyGuard(t *testing.T) {
	store := storeWith(t,
		learningCard("alpha", 1, sessionNow.Add(-time.Minute)),
		learningCard("beta", 1, sessionNow.Add(-time.Minute)),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	first, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, first)

	// A second mark before Advance is ignored outright.
	second, err := controller.Answer(context.Background(), srs.AnswerIncorrect)
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Equal(t, 1, controller.Stats().CardsReviewed)

	require.NoError(t, controller.Advance(context.Background()))
	third, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	assert.NotNil(t, third)
}

func TestControllerAnswerWithoutCurrentCardIsNoOp(t *testing.T) {
	store := words.NewMemoryStore()
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	assert.Nil(t, feedback)
	assert.Zero(t, controller.Stats().CardsReviewed)
}

func TestControllerStopsAudioBeforeMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	playback := mock_audio.NewMockPlayback(ctrl)
	playback.EXPECT().Pause()
	playback.EXPECT().Reset()

	manager := audio.NewManager()
	manager.Swap(playback)

	store := storeWith(t, learningCard("alpha", 1, sessionNow.Add(-time.Minute)))
	controller := NewController(store, manager, Settings{NewCardsPerDay: 5},
		WithClock(srs.FixedClock(sessionNow)))
	require.NoError(t, controller.Start(context.Background()))

	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	assert.Nil(t, manager.Current())
}

func TestControllerSessionCounts(t *testing.T) {
	newCard := srs.NewCard("fresh", "fresh", "newly made", 9)
	store := storeWith(t,
		learningCard("alpha", 1, sessionNow.Add(-time.Minute)),
		newCard,
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	counts := controller.Counts()
	assert.Equal(t, Counts{New: 1, Learning: 1}, counts)

	// alpha answered correct: learning decremented, then incremented again
	// because it stays due within 24 hours.
	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NoError(t, controller.Advance(context.Background()))
	assert.Equal(t, Counts{New: 1, Learning: 1}, controller.Counts())

	// fresh answered correct: new decremented, learning incremented, and
	// the daily new-card counter moves.
	_, err = controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NoError(t, controller.Advance(context.Background()))
	assert.Equal(t, Counts{New: 0, Learning: 2}, controller.Counts())
	assert.Equal(t, 1, controller.TodaysNewCards())
}

func TestControllerCountSkipsCategoryBeyondTwentyFourHours(t *testing.T) {
	store := storeWith(t, learningCard("alpha", 4, sessionNow.Add(-time.Minute)))
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})
	require.Equal(t, Counts{Learning: 1}, controller.Counts())

	// Correct moves alpha to interval 5, due in a week: the learning tally
	// drops and nothing replaces it.
	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	assert.Equal(t, Counts{}, controller.Counts())
}

func TestControllerStats(t *testing.T) {
	store := storeWith(t,
		learningCard("alpha", 1, sessionNow.Add(-2*time.Minute)),
		learningCard("beta", 1, sessionNow.Add(-time.Minute)),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 5})

	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NoError(t, controller.Advance(context.Background()))

	_, err = controller.Answer(context.Background(), srs.AnswerIncorrect)
	require.NoError(t, err)
	require.NoError(t, controller.Advance(context.Background()))

	assert.Equal(t, Stats{CardsReviewed: 2, CorrectAnswers: 1}, controller.Stats())
}

func TestControllerRefillRespectsDailyNewCardQuota(t *testing.T) {
	// One new card is introduced, exhausting a quota of one; the refill
	// must not pull the remaining new card in.
	store := storeWith(t,
		srs.NewCard("first", "first", "meaning", 10),
		srs.NewCard("second", "second", "meaning", 9),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 1})
	require.Equal(t, 1, controller.Remaining())

	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, feedback)
	assert.True(t, feedback.Requeued) // interval 2, due in 10 minutes

	// Graduate it out so the queue can empty.
	require.NoError(t, controller.Advance(context.Background()))
	feedback, err = controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	require.NotNil(t, feedback)
	assert.False(t, feedback.Requeued)

	require.NoError(t, controller.Advance(context.Background()))
	// Queue is empty, the refill found no due cards and new cards are over
	// quota; the waiting fallback has nothing either (the graduated card is
	// processed).
	assert.Zero(t, controller.Remaining())
	assert.Nil(t, controller.Current())
}

func TestControllerRefillFallsBackToWaitingCards(t *testing.T) {
	store := storeWith(t,
		learningCard("due-now", 1, sessionNow.Add(-time.Minute)),
		learningCard("waiting", 2, sessionNow.Add(30*time.Minute)),
	)
	controller := startedController(t, store, Settings{NewCardsPerDay: 0})
	require.Equal(t, 1, controller.Remaining())

	// Graduate due-now out of the session.
	_, err := controller.Answer(context.Background(), srs.AnswerEasy)
	require.NoError(t, err)
	require.NoError(t, controller.Advance(context.Background()))

	queue := controller.Queue()
	require.Len(t, queue, 1)
	assert.Equal(t, "waiting", queue[0].Key)
}

func TestControllerAnswerStoreFailureReleasesGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_words.NewMockStore(ctrl)

	cards := []srs.Card{learningCard("alpha", 1, sessionNow.Add(-time.Minute))}
	store.EXPECT().All(gomock.Any()).Return(cards, nil)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	controller := NewController(store, audio.NewManager(), Settings{NewCardsPerDay: 5},
		WithClock(srs.FixedClock(sessionNow)))
	require.NoError(t, controller.Start(context.Background()))

	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.Error(t, err)

	// The guard was released, so the retry goes through.
	feedback, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)
	assert.NotNil(t, feedback)
}

func TestControllerRecordsReviewLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mock_review.NewMockRepository(ctrl)

	var recorded review.Log
	logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log *review.Log) error {
			recorded = *log
			return nil
		})

	store := storeWith(t, learningCard("alpha", 1, sessionNow.Add(-time.Minute)))
	controller := startedController(t, store, Settings{NewCardsPerDay: 5}, WithReviewLog(logs))

	_, err := controller.Answer(context.Background(), srs.AnswerCorrect)
	require.NoError(t, err)

	assert.Equal(t, "alpha", recorded.SenseKey)
	assert.Equal(t, "correct", recorded.Answer)
	assert.Equal(t, 2, recorded.Interval)
	assert.Equal(t, sessionNow, recorded.ReviewedAt)
}

func TestControllerMaxReviewsPerDayCapsQueue(t *testing.T) {
	var cards []srs.Card
	for i := 0; i < 5; i++ {
		cards = append(cards, learningCard(
			string(rune('a'+i)), 1, sessionNow.Add(-time.Duration(i+1)*time.Minute)))
	}
	store := storeWith(t, cards...)

	controller := startedController(t, store, Settings{NewCardsPerDay: 0, MaxReviewsPerDay: 3})
	assert.Equal(t, 3, controller.Remaining())
}
