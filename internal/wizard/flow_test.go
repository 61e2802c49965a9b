package wizard

import (
	"context"
	"sync"
	"testing"
	"time"

	"arbotique/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommender struct {
	mu      sync.Mutex
	calls   int
	profile models.UserProfile
	quiz    models.StyleQuiz
	outfits []models.Outfit
	block   chan struct{}
	started chan struct{}
}

func (f *fakeRecommender) GetRecommendations(_ context.Context, profile models.UserProfile, quiz models.StyleQuiz) []models.Outfit {
	f.mu.Lock()
	f.calls++
	f.profile, f.quiz = profile, quiz
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.outfits
}

func sampleOutfits() []models.Outfit {
	return []models.Outfit{{ID: "outfit_1", Name: "Casual Weekend Look", TotalPrice: 7497}}
}

// flowAtQuiz returns a flow that has passed intro and profile.
func flowAtQuiz(t *testing.T, rec Recommender) *Flow {
	t.Helper()
	f := NewFlow("s1", rec)
	_, err := f.StartRecommendations()
	require.NoError(t, err)
	_, err = f.DismissIntro()
	require.NoError(t, err)
	snap, err := f.SubmitProfile(validProfile())
	require.NoError(t, err)
	require.Equal(t, StepQuiz, snap.Step)
	return f
}

func TestNewFlow(t *testing.T) {
	snap := NewFlow("s1", &fakeRecommender{}).Snapshot()

	assert.Equal(t, "s1", snap.ID)
	assert.Equal(t, ViewHome, snap.View)
	assert.Equal(t, StepProfile, snap.Step)
	assert.False(t, snap.IntroSeen)
	assert.False(t, snap.Loading)
	assert.Equal(t, 25, snap.Profile.Age)
	assert.Equal(t, models.BudgetRange{Min: 1000, Max: 10000}, snap.Quiz.Budget)
	assert.Empty(t, snap.Outfits)
}

func TestFlow_IntroShownOnce(t *testing.T) {
	f := NewFlow("s1", &fakeRecommender{})

	snap, err := f.StartRecommendations()
	require.NoError(t, err)
	assert.Equal(t, ViewIntro, snap.View)

	snap, err = f.DismissIntro()
	require.NoError(t, err)
	assert.Equal(t, ViewWizard, snap.View)
	assert.Equal(t, StepProfile, snap.Step)
	assert.True(t, snap.IntroSeen)

	_, err = f.GoHome()
	require.NoError(t, err)

	snap, err = f.StartRecommendations()
	require.NoError(t, err)
	assert.Equal(t, ViewWizard, snap.View)
	assert.Equal(t, StepProfile, snap.Step)
}

func TestFlow_InvalidTransitions(t *testing.T) {
	f := NewFlow("s1", &fakeRecommender{})

	_, err := f.DismissIntro()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.SubmitProfile(validProfile())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.ToggleColor("red")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.FetchRecommendations(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.Restart()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Equal(t, ViewHome, f.Snapshot().View)
}

func TestFlow_SubmitProfileValidation(t *testing.T) {
	f := NewFlow("s1", &fakeRecommender{})
	_, _ = f.StartRecommendations()
	_, _ = f.DismissIntro()
	originalID := f.Snapshot().Profile.ID

	p := validProfile()
	p.Email = "nope"
	_, err := f.SubmitProfile(p)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "email")
	assert.Equal(t, StepProfile, f.Snapshot().Step)

	snap, err := f.SubmitProfile(validProfile())
	require.NoError(t, err)
	assert.Equal(t, StepQuiz, snap.Step)
	assert.Equal(t, originalID, snap.Profile.ID)
	assert.Equal(t, "Ada Lovelace", snap.Profile.Name)
}

func TestFlow_QuizEdits(t *testing.T) {
	f := flowAtQuiz(t, &fakeRecommender{})

	_, _ = f.ToggleColor("Red")
	_, _ = f.ToggleColor("Blue")
	snap, err := f.ToggleColor("Red")
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue"}, snap.Quiz.Colors)

	snap, _ = f.ToggleStyle("Casual")
	assert.Equal(t, []string{"Casual"}, snap.Quiz.Styles)

	snap, _ = f.ToggleOccasion("Work")
	assert.Equal(t, []string{"Work"}, snap.Quiz.Occasions)

	snap, _ = f.SetBudgetMax(500)
	assert.Equal(t, models.BudgetRange{Min: 1000, Max: 1000}, snap.Quiz.Budget)

	snap, _ = f.SetBodyType("athletic")
	assert.Equal(t, "athletic", snap.Quiz.BodyType)

	snap, _ = f.SetSkinTone("olive")
	assert.Equal(t, "olive", snap.Quiz.SkinTone)

	_, err = f.Toggle("shoes", "red")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFlow_SnapshotIsACopy(t *testing.T) {
	f := flowAtQuiz(t, &fakeRecommender{})
	snap, _ := f.ToggleColor("red")

	snap.Quiz.Colors[0] = "mutated"
	assert.Equal(t, []string{"red"}, f.Snapshot().Quiz.Colors)
}

func TestFlow_FetchRecommendations(t *testing.T) {
	rec := &fakeRecommender{outfits: sampleOutfits()}
	f := flowAtQuiz(t, rec)
	_, _ = f.ToggleStyle("Formal")

	snap, err := f.FetchRecommendations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StepResults, snap.Step)
	assert.False(t, snap.Loading)
	assert.Equal(t, sampleOutfits(), snap.Outfits)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, "Ada Lovelace", rec.profile.Name)
	assert.Equal(t, []string{"Formal"}, rec.quiz.Styles)
}

func TestFlow_FetchRecommendations_EmptyResult(t *testing.T) {
	f := flowAtQuiz(t, &fakeRecommender{outfits: []models.Outfit{}})

	snap, err := f.FetchRecommendations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepResults, snap.Step)
	assert.Empty(t, snap.Outfits)
}

func TestFlow_RejectsTransitionsWhileLoading(t *testing.T) {
	rec := &fakeRecommender{
		outfits: sampleOutfits(),
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	f := flowAtQuiz(t, rec)

	done := make(chan Snapshot, 1)
	go func() {
		snap, err := f.FetchRecommendations(context.Background())
		assert.NoError(t, err)
		done <- snap
	}()

	select {
	case <-rec.started:
	case <-time.After(time.Second):
		t.Fatal("recommender was not called")
	}

	assert.True(t, f.Snapshot().Loading)

	_, err := f.FetchRecommendations(context.Background())
	assert.ErrorIs(t, err, ErrRequestInFlight)
	_, err = f.Back()
	assert.ErrorIs(t, err, ErrRequestInFlight)
	_, err = f.ToggleColor("red")
	assert.ErrorIs(t, err, ErrRequestInFlight)
	_, err = f.GoHome()
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(rec.block)
	snap := <-done
	assert.Equal(t, StepResults, snap.Step)
	assert.False(t, snap.Loading)
	assert.Equal(t, 1, rec.calls)
}

func TestFlow_BackRestartHome(t *testing.T) {
	f := flowAtQuiz(t, &fakeRecommender{outfits: sampleOutfits()})
	_, _ = f.ToggleColor("red")
	_, err := f.FetchRecommendations(context.Background())
	require.NoError(t, err)

	snap, err := f.Back()
	require.NoError(t, err)
	assert.Equal(t, StepQuiz, snap.Step)
	assert.Equal(t, []string{"red"}, snap.Quiz.Colors)

	snap, err = f.Back()
	require.NoError(t, err)
	assert.Equal(t, StepProfile, snap.Step)
	assert.Equal(t, "Ada Lovelace", snap.Profile.Name)

	_, err = f.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	snap, err = f.GoHome()
	require.NoError(t, err)
	assert.Equal(t, ViewHome, snap.View)
	assert.Equal(t, "Ada Lovelace", snap.Profile.Name)

	_, _ = f.StartRecommendations()
	snap, err = f.Restart()
	require.NoError(t, err)
	assert.Equal(t, StepProfile, snap.Step)
	assert.Empty(t, snap.Profile.Name)
	assert.Empty(t, snap.Quiz.Colors)
	assert.Empty(t, snap.Outfits)
	assert.True(t, snap.IntroSeen)
}
