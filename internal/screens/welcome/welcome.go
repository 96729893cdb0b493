package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/router"
	"github.com/abhisek/careaid/internal/screen"
	"github.com/abhisek/careaid/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	heartEnd     = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	overviewAt   = 2500 * time.Millisecond
	totalDur     = 4500 * time.Millisecond
)

const heartArt = `   ╭──╮   ╭──╮
  ╭╯  ╰╮ ╭╯  ╰╮
  │    ╰─╯    │
  ╰╮   ┼     ╭╯
   ╰╮  ┼    ╭╯
    ╰╮     ╭╯
     ╰╮   ╭╯
      ╰───╯`

// heartbeat frames alternate beside the heart.
var heartbeat = []string{"·", "♥"}

// DefaultTagline is shown under the banner when none is given.
const DefaultTagline = "Your care, your choice."

// Intro is what the welcome screen tells the user about the aid.
type Intro struct {
	Title   string
	Tagline string
	Steps   []string
}

type tickMsg time.Time

// WelcomeScreen introduces the aid, then hands over to it on a key press.
type WelcomeScreen struct {
	intro        Intro
	aidFactory   func() screen.Screen
	elapsed      time.Duration
	beats        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen built by
// aidFactory. An empty tagline uses DefaultTagline.
func New(intro Intro, aidFactory func() screen.Screen) *WelcomeScreen {
	if intro.Tagline == "" {
		intro.Tagline = DefaultTagline
	}
	return &WelcomeScreen{intro: intro, aidFactory: aidFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.beats++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	aid := w.aidFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: aid}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderHeart()}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.intro.Tagline)
		sections = append(sections, "", RenderBanner(width), "", tagline)
	}

	if w.elapsed >= overviewAt {
		if o := w.renderOverview(); o != "" {
			sections = append(sections, "", o)
		}
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to begin")
		sections = append(sections, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (w *WelcomeScreen) renderHeart() string {
	heart := lipgloss.NewStyle().Foreground(theme.Error).Render(heartArt)
	if w.elapsed < heartEnd {
		return heart
	}

	beat := heartbeat[w.beats%len(heartbeat)]
	left := lipgloss.NewStyle().Foreground(theme.Accent).Render(beat)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(beat)

	lines := strings.Split(heart, "\n")
	for _, i := range []int{0, 3, 6} {
		if i < len(lines) {
			lines[i] = left + "  " + lines[i] + "  " + right
		}
	}
	return strings.Join(lines, "\n")
}

// renderOverview lists the pack title and its steps.
func (w *WelcomeScreen) renderOverview() string {
	if w.intro.Title == "" && len(w.intro.Steps) == 0 {
		return ""
	}
	var b strings.Builder
	if w.intro.Title != "" {
		b.WriteString(theme.Heading.Render(w.intro.Title))
		b.WriteString("\n")
	}
	for i, s := range w.intro.Steps {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d. %s", i+1, s)))
		if i < len(w.intro.Steps)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
