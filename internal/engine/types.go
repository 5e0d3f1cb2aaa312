package engine

// Action is a configurable kind of activity worth a fixed number of points.
type Action struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Entry is one logged occurrence of an Action. Label and Points are
// snapshots taken when the entry was created.
type Entry struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	ActionID        string `json:"actionId"`
	Label           string `json:"label,omitempty"`
	Points          int    `json:"points"`
	Notes           string `json:"notes"`
	SansDistraction bool   `json:"sansDistraction"`
	BeforeNoon      bool   `json:"beforeNoon"`
}

// Settings holds the numeric knobs read by built-in badges.
type Settings struct {
	CodeMasterLessons    int `json:"codeMasterLessons"`
	RegulariteDaysNeeded int `json:"regulariteDaysNeeded"`
}

// DailyAggregate is the derived XP summary of one calendar day.
type DailyAggregate struct {
	Date          string
	EntryCount    int
	BaseXP        int
	BonusXP       int
	TotalXP       int
	AnyStreak     int
	SixPlusStreak int
}

// ChartPoint is one day in the recent-XP time series.
type ChartPoint struct {
	Date string
	XP   int
}

// Progression is the cumulative view of the daily aggregates.
type Progression struct {
	TotalXP          int
	Level            int
	Title            string
	XPInLevel        int
	XPForNext        int
	ProgressFraction float64
	Chart            []ChartPoint
}

type BadgeMode string

const (
	BadgeModeManual BadgeMode = "manual"
	BadgeModeAuto   BadgeMode = "auto"
)

func (m BadgeMode) IsValid() bool {
	switch m {
	case BadgeModeManual, BadgeModeAuto:
		return true
	default:
		return false
	}
}

// BadgeSpec is a user-authored badge. Manual badges carry Validated; auto
// badges carry a Rule.
type BadgeSpec struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Mode      BadgeMode  `json:"mode"`
	Cond      string     `json:"cond,omitempty"`
	Validated bool       `json:"validated,omitempty"`
	Rule      *BadgeRule `json:"spec,omitempty"`
}

// BadgeSource tells where a badge on the board comes from.
type BadgeSource string

const (
	BadgeSourceSpecial BadgeSource = "special"
	BadgeSourceAction  BadgeSource = "action"
	BadgeSourceCustom  BadgeSource = "custom"
)

// BadgeResult is the evaluated state of one badge.
type BadgeResult struct {
	ID          string
	Name        string
	Unlocked    bool
	Description string
	Source      BadgeSource
	Mode        BadgeMode
}

// Outcome is the result of evaluating one rule.
type Outcome struct {
	OK          bool
	Description string
}
