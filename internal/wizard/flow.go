// Package wizard holds the recommendation wizard state and its transitions.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"arbotique/internal/models"
)

type View string

const (
	ViewHome   View = "home"
	ViewIntro  View = "intro"
	ViewWizard View = "wizard"
)

type Step int

const (
	StepProfile Step = iota + 1
	StepQuiz
	StepResults
)

type QuizField string

const (
	FieldColors    QuizField = "colors"
	FieldStyles    QuizField = "styles"
	FieldOccasions QuizField = "occasions"
)

var (
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrRequestInFlight   = errors.New("recommendation request already in flight")
	ErrUnknownField      = errors.New("unknown quiz field")
)

// Recommender produces outfits for a profile and quiz. It must not fail.
type Recommender interface {
	GetRecommendations(ctx context.Context, profile models.UserProfile, quiz models.StyleQuiz) []models.Outfit
}

// Snapshot is a copy of the flow state safe to hand to renderers.
type Snapshot struct {
	ID        string
	View      View
	Step      Step
	IntroSeen bool
	Loading   bool
	Profile   models.UserProfile
	Quiz      models.StyleQuiz
	Outfits   []models.Outfit
}

// Flow is one user's pass through the wizard. All fields change only through
// the transition methods below.
type Flow struct {
	mu          sync.Mutex
	id          string
	view        View
	step        Step
	introSeen   bool
	loading     bool
	profile     models.UserProfile
	quiz        models.StyleQuiz
	outfits     []models.Outfit
	recommender Recommender
}

func NewFlow(id string, recommender Recommender) *Flow {
	return &Flow{
		id:          id,
		view:        ViewHome,
		step:        StepProfile,
		profile:     models.NewUserProfile(),
		quiz:        models.NewStyleQuiz(),
		recommender: recommender,
	}
}

func (f *Flow) ID() string { return f.id }

// Loading reports whether a recommendation round is in flight.
func (f *Flow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() Snapshot {
	outfits := make([]models.Outfit, len(f.outfits))
	copy(outfits, f.outfits)
	return Snapshot{
		ID:        f.id,
		View:      f.view,
		Step:      f.step,
		IntroSeen: f.introSeen,
		Loading:   f.loading,
		Profile:   f.profile,
		Quiz:      cloneQuiz(f.quiz),
		Outfits:   outfits,
	}
}

// StartRecommendations leaves the home view: first visit shows the intro,
// later visits go straight to the profile step.
func (f *Flow) StartRecommendations() (Snapshot, error) {
	return f.transition(func() error {
		if f.view != ViewHome {
			return f.invalid("start recommendations")
		}
		if f.introSeen {
			f.view, f.step = ViewWizard, StepProfile
		} else {
			f.view = ViewIntro
		}
		return nil
	})
}

func (f *Flow) DismissIntro() (Snapshot, error) {
	return f.transition(func() error {
		if f.view != ViewIntro {
			return f.invalid("dismiss intro")
		}
		f.introSeen = true
		f.view, f.step = ViewWizard, StepProfile
		return nil
	})
}

// SubmitProfile validates the profile and advances to the style quiz. On a
// *ValidationError the flow stays on the profile step.
func (f *Flow) SubmitProfile(p models.UserProfile) (Snapshot, error) {
	return f.transition(func() error {
		if !f.at(StepProfile) {
			return f.invalid("submit profile")
		}
		if err := ValidateProfile(p); err != nil {
			return err
		}
		if p.ID == "" {
			p.ID = f.profile.ID
		}
		f.profile = p
		f.step = StepQuiz
		return nil
	})
}

func (f *Flow) Toggle(field QuizField, value string) (Snapshot, error) {
	return f.onQuiz(func() error {
		switch field {
		case FieldColors:
			f.quiz.Colors = models.Toggle(f.quiz.Colors, value)
		case FieldStyles:
			f.quiz.Styles = models.Toggle(f.quiz.Styles, value)
		case FieldOccasions:
			f.quiz.Occasions = models.Toggle(f.quiz.Occasions, value)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		return nil
	})
}

func (f *Flow) ToggleColor(color string) (Snapshot, error) { return f.Toggle(FieldColors, color) }

func (f *Flow) ToggleStyle(style string) (Snapshot, error) { return f.Toggle(FieldStyles, style) }

func (f *Flow) ToggleOccasion(occasion string) (Snapshot, error) {
	return f.Toggle(FieldOccasions, occasion)
}

func (f *Flow) SetBudgetMax(limit int) (Snapshot, error) {
	return f.onQuiz(func() error {
		f.quiz.SetBudgetMax(limit)
		return nil
	})
}

func (f *Flow) SetBodyType(bodyType string) (Snapshot, error) {
	return f.onQuiz(func() error {
		f.quiz.BodyType = bodyType
		return nil
	})
}

func (f *Flow) SetSkinTone(tone string) (Snapshot, error) {
	return f.onQuiz(func() error {
		f.quiz.SkinTone = tone
		return nil
	})
}

// FetchRecommendations runs one recommendation round from the quiz step.
// The lock is released during the remote call; the loading flag rejects a
// second trigger meanwhile. Loading is cleared and the flow moves to the
// results step whatever the recommender does.
func (f *Flow) FetchRecommendations(ctx context.Context) (snap Snapshot, err error) {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return Snapshot{}, ErrRequestInFlight
	}
	if !f.at(StepQuiz) {
		invalidErr := f.invalid("fetch recommendations")
		f.mu.Unlock()
		return Snapshot{}, invalidErr
	}
	f.loading = true
	profile, quiz := f.profile, cloneQuiz(f.quiz)
	f.mu.Unlock()

	var outfits []models.Outfit
	defer func() {
		f.mu.Lock()
		f.outfits = outfits
		f.step = StepResults
		f.loading = false
		snap = f.snapshotLocked()
		f.mu.Unlock()
	}()

	outfits = f.recommender.GetRecommendations(ctx, profile, quiz)
	return snap, nil
}

// Back moves one step towards the profile.
func (f *Flow) Back() (Snapshot, error) {
	return f.transition(func() error {
		if f.view != ViewWizard || f.step == StepProfile {
			return f.invalid("go back")
		}
		f.step--
		return nil
	})
}

// Restart discards profile, quiz and outfits and reopens the profile step.
func (f *Flow) Restart() (Snapshot, error) {
	return f.transition(func() error {
		if f.view != ViewWizard {
			return f.invalid("restart")
		}
		f.profile = models.NewUserProfile()
		f.quiz = models.NewStyleQuiz()
		f.outfits = nil
		f.step = StepProfile
		return nil
	})
}

// GoHome returns to the landing view. Entered data is kept until Restart.
func (f *Flow) GoHome() (Snapshot, error) {
	return f.transition(func() error {
		f.view = ViewHome
		return nil
	})
}

func (f *Flow) transition(apply func() error) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loading {
		return Snapshot{}, ErrRequestInFlight
	}
	if err := apply(); err != nil {
		return Snapshot{}, err
	}
	return f.snapshotLocked(), nil
}

func (f *Flow) onQuiz(apply func() error) (Snapshot, error) {
	return f.transition(func() error {
		if !f.at(StepQuiz) {
			return f.invalid("edit style quiz")
		}
		return apply()
	})
}

func (f *Flow) at(step Step) bool {
	return f.view == ViewWizard && f.step == step
}

func (f *Flow) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s from view %s step %d", ErrInvalidTransition, action, f.view, f.step)
}

func cloneQuiz(q models.StyleQuiz) models.StyleQuiz {
	q.Colors = append(make([]string, 0, len(q.Colors)), q.Colors...)
	q.Styles = append(make([]string, 0, len(q.Styles)), q.Styles...)
	q.Occasions = append(make([]string, 0, len(q.Occasions)), q.Occasions...)
	return q
}
