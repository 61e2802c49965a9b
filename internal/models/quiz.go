package models

const (
	DefaultBudgetMin = 1000
	DefaultBudgetMax = 10000
)

type BudgetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// StyleQuiz holds the style preferences. Colors, Styles and Occasions behave
// as sets: entries are added and removed through Toggle.
type StyleQuiz struct {
	Colors    []string    `json:"preferred_colors"`
	Styles    []string    `json:"preferred_styles"`
	Budget    BudgetRange `json:"budget_range"`
	Occasions []string    `json:"occasions"`
	BodyType  string      `json:"body_type,omitempty"`
	SkinTone  string      `json:"skin_tone,omitempty"`
}

func NewStyleQuiz() StyleQuiz {
	return StyleQuiz{
		Colors:    []string{},
		Styles:    []string{},
		Occasions: []string{},
		Budget:    BudgetRange{Min: DefaultBudgetMin, Max: DefaultBudgetMax},
	}
}

// Toggle removes value from set if present, otherwise appends it.
func Toggle(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			out := make([]string, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(set, value)
}

// SetBudgetMax adjusts the upper bound. The lower bound never moves.
func (q *StyleQuiz) SetBudgetMax(limit int) {
	if limit < q.Budget.Min {
		limit = q.Budget.Min
	}
	q.Budget.Max = limit
}
