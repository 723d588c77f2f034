package models

// PRAction is the lifecycle verb carried in a pull_request event payload.
type PRAction string

const (
	ActionOpened   PRAction = "opened"
	ActionReopened PRAction = "reopened"
	ActionClosed   PRAction = "closed"
)

// IsOpen reports whether the action leaves the pull request open.
func (a PRAction) IsOpen() bool {
	return a == ActionOpened || a == ActionReopened
}

func (a PRAction) String() string {
	return string(a)
}

// Default embed colours, taken from the GitHub brand palette.
var (
	ColorOpen   = RGB(0x6cc644) // mantis
	ColorMerged = RGB(0x6e5494) // butterfly bush
	ColorClosed = RGB(0xbd2c00) // milano red, also used for unknown events
)
