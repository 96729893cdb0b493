package session

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/careaid/internal/content"
	sess "github.com/abhisek/careaid/internal/session"
	"github.com/abhisek/careaid/internal/ui/components"
	"github.com/abhisek/careaid/internal/ui/layout"
	"github.com/abhisek/careaid/internal/ui/richtext"
	"github.com/abhisek/careaid/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.printMenu != nil {
		title := theme.Title.Render("Print")
		hint := theme.Hint.Render("The output is saved as an HTML file you can print.")
		return components.Dialog(title+"\n\n"+s.printMenu.View()+"\n"+hint, width, height)
	}

	cw := components.ContentWidth(width)

	top := lipgloss.NewStyle().Width(width).Padding(0, 2).Render(s.renderProgress(width - 4))
	bottom := s.renderBottom(width)
	bodyHeight := max(height-lipgloss.Height(top)-lipgloss.Height(bottom)-1, 1)

	lines, start, end := s.contentLines(cw)
	s.scroll = s.clampScroll(len(lines), bodyHeight, start, end)

	vp := viewport.New(viewport.WithWidth(width), viewport.WithHeight(bodyHeight))
	vp.SetContentLines(lines)
	vp.SetYOffset(s.scroll)

	return lipgloss.JoinVertical(lipgloss.Left, top, "", vp.View(), bottom)
}

func (s *SessionScreen) renderProgress(width int) string {
	titles := make([]string, len(s.sess.Pack().Steps))
	for i, st := range s.sess.Pack().Steps {
		titles[i] = st.Title
	}
	return layout.RenderProgress(titles, s.sess.Progress(), s.sess.Active(), width)
}

// clampScroll keeps the offset in range and, when following focus, moves
// it so lines start..end are visible.
func (s *SessionScreen) clampScroll(total, height, start, end int) int {
	off := s.scroll
	if s.follow && start >= 0 {
		if end-start+1 > height || start < off {
			off = start
		} else if end >= off+height {
			off = end - height + 1
		}
		s.follow = false
	}
	return min(max(off, 0), max(total-height, 0))
}

// contentLines renders the step body followed by its panel. start and end
// bound the focused control's lines, or are -1.
func (s *SessionScreen) contentLines(cw int) (lines []string, start, end int) {
	indent := "  "
	start, end = -1, -1

	if sec, err := s.sess.Doc().Section(s.sess.Active()); err == nil {
		for _, l := range richtext.Render(sec, richtext.Options{
			Width:    cw,
			TextMode: s.sess.Mode() == sess.ModeText,
		}) {
			lines = append(lines, indent+l)
		}
	}

	if s.sess.ActiveStep().Kind == content.KindQuiz {
		if eval, ok := s.sess.Evaluation(); ok {
			lines = append(lines, "", indent+theme.Status.Render(
				fmt.Sprintf("You answered %d of %d correctly.", eval.Score(), len(eval.Outcomes))))
		}
	}

	for i, c := range s.stepControls() {
		lines = append(lines, "")
		if i == s.focus {
			start = len(lines)
		}
		for _, l := range strings.Split(strings.TrimRight(c.View(), "\n"), "\n") {
			lines = append(lines, indent+l)
		}
		if i == s.focus {
			end = len(lines) - 1
		}
	}
	return lines, start, end
}

func (s *SessionScreen) renderBottom(width int) string {
	var parts []string

	terms := s.sess.Terms()
	if s.searching {
		parts = append(parts, "  "+theme.Heading.Render("Search ")+s.search.View())
	}
	if len(terms) > 0 {
		tags := make([]string, len(terms))
		for i, t := range terms {
			tag := theme.Mark.Render(" " + t + " ")
			if s.searching && i == s.termSel {
				tag = theme.Selected.Render("▸") + tag
			}
			tags[i] = tag
		}
		parts = append(parts, "  "+theme.Hint.Render("Highlighting: ")+strings.Join(tags, " "))
	}

	if status := s.sess.Status(); status != "" {
		style := theme.Status
		if status == s.alert {
			style = theme.Incorrect
		}
		parts = append(parts, "  "+style.Render(status))
	}

	back := components.NewButton("Back", "ctrl+p", s.sess.Active() > 1)
	next := components.NewButton("Next", "ctrl+n", s.sess.CanAdvance())
	buttons := []string{back.View(), "  ", next.View()}
	switch s.sess.ActiveStep().Kind {
	case content.KindDecision:
		buttons = append(buttons, "  ", components.NewButton("Generate summary", "ctrl+g", true).View())
	case content.KindSummary:
		buttons = append(buttons, "  ", components.NewButton("Print", "ctrl+o", true).View())
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	parts = append(parts, lipgloss.PlaceHorizontal(width, lipgloss.Center, row))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
