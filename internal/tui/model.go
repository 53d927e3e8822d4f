// Package tui provides the Bubble Tea drafting editor.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
	"github.com/inkform/galley/internal/store"
)

// Model implements the Bubble Tea editor UI.
type Model struct {
	store *store.Store
	path  string
	title string
	wpm   int

	hasLimit   bool
	limitKind  metrics.LimitKind
	limitValue int

	width  int
	height int
	scroll int

	content []rune
	cursor  int
	dirty   bool
	savedAt time.Time

	counts   metrics.CountResult
	overflow metrics.OverflowResult
	reading  metrics.ReadingTime

	editing    bool
	kindInput  textinput.Model
	valueInput textinput.Model
	formIndex  int
	formErr    string
}

var (
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	cursorStyle = textStyle.Copy().Underline(true)
)

// NewModel constructs an editor model over the initial text. path may be
// empty for an unsaved scratch draft.
func NewModel(cfg model.EditorConfig, st *store.Store, path, initial string) (*Model, error) {
	m := &Model{
		store: st,
		path:  path,
		title: cfg.Title,
		wpm:   cfg.WordsPerMinute,
	}
	if m.wpm <= 0 {
		m.wpm = metrics.DefaultWordsPerMinute
	}
	if m.title == "" {
		m.title = defaultTitle(path)
	}
	if cfg.LimitKind != "" {
		kind, err := metrics.ParseLimitKind(cfg.LimitKind)
		if err != nil {
			return nil, err
		}
		if cfg.LimitValue < 0 {
			return nil, fmt.Errorf("limit value must be >= 0")
		}
		m.hasLimit = true
		m.limitKind = kind
		m.limitValue = cfg.LimitValue
	}
	m.kindInput = newLimitInput("Limit: ", "words")
	m.valueInput = newLimitInput("Value: ", "500")
	m.content = []rune(normalizeText(initial))
	m.cursor = len(m.content)
	m.recompute()
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateLimitForm(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlS:
			m.saveDraft()
			return m, nil
		case tea.KeyCtrlL:
			return m.startLimitForm()
		case tea.KeyBackspace:
			m.deleteBeforeCursor()
			return m, nil
		case tea.KeyDelete:
			m.deleteAtCursor()
			return m, nil
		case tea.KeyLeft:
			m.moveCursor(-1)
			return m, nil
		case tea.KeyRight:
			m.moveCursor(1)
			return m, nil
		case tea.KeyUp:
			m.moveVertical(-1)
			return m, nil
		case tea.KeyDown:
			m.moveVertical(1)
			return m, nil
		case tea.KeyHome:
			m.moveLineStart()
			return m, nil
		case tea.KeyEnd:
			m.moveLineEnd()
			return m, nil
		case tea.KeyEnter:
			m.insertRunes([]rune{'\n'})
			return m, nil
		case tea.KeySpace:
			m.insertRunes([]rune{' '})
			return m, nil
		case tea.KeyRunes:
			m.insertRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderHeader()
	footer := m.renderFooter()
	headerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, header)
	footerHeight := lipgloss.Height(footer)
	footerBlock := lipgloss.Place(m.width, footerHeight, lipgloss.Center, lipgloss.Center, footer)
	bodyHeight := m.height - 1 - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body := m.renderBody(bodyHeight)
	return headerLine + "\n" + body + "\n" + footerBlock
}

func (m *Model) renderBody(height int) string {
	width := m.textWidth()
	spans := layoutLines(m.content, width)
	line := cursorLine(spans, m.cursor)
	m.ensureVisible(line, len(spans), height)
	end := m.scroll + height
	if end > len(spans) {
		end = len(spans)
	}
	rows := make([]string, 0, height)
	for li := m.scroll; li < end; li++ {
		rows = append(rows, m.renderLine(spans[li], li == line))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	block := lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Top, block)
}

func (m *Model) renderLine(sp lineSpan, cursorHere bool) string {
	var b strings.Builder
	for i := sp.start; i < sp.end; i++ {
		b.WriteString(m.renderRune(i))
	}
	if cursorHere && m.cursor == sp.end {
		b.WriteString(cursorStyle.Render(" "))
	}
	return b.String()
}

func (m *Model) renderRune(i int) string {
	r := m.content[i]
	if r == '\t' {
		r = ' '
	}
	style := textStyle
	if m.hasLimit && m.overflow.IsOver && i >= m.overflow.Boundary {
		style = overStyle
	}
	if i == m.cursor {
		style = style.Copy().Underline(true)
	}
	return style.Render(string(r))
}

func (m *Model) renderHeader() string {
	name := m.title
	if m.dirty {
		name += " *"
	}
	return titleStyle.Render(name) + "  " + m.limitSummary()
}

func (m *Model) limitSummary() string {
	if !m.hasLimit {
		return dimStyle.Render("no limit")
	}
	summary := dimStyle.Render(fmt.Sprintf("limit %d %s", m.limitValue, m.limitKind))
	if m.overflow.IsOver {
		summary += "  " + warnStyle.Render(fmt.Sprintf("over by %d", m.overflow.Amount))
	}
	return summary
}

func (m *Model) renderFooter() string {
	if m.editing {
		return m.renderLimitForm()
	}
	segments := []string{
		fmt.Sprintf("%d words", m.counts.Words),
		fmt.Sprintf("%d chars", m.counts.Characters),
		fmt.Sprintf("%d para", m.counts.Paragraphs),
		fmt.Sprintf("%d sent", m.counts.Sentences),
		m.reading.Label,
	}
	footer := footerStyle.Render(strings.Join(segments, " · "))
	if !m.dirty && !m.savedAt.IsZero() {
		footer += footerStyle.Render(fmt.Sprintf("  saved %s", m.savedAt.Format("15:04:05")))
	}
	return footer
}

func (m *Model) renderLimitForm() string {
	lines := []string{
		m.kindInput.View() + "  " + m.valueInput.View(),
		dimStyle.Render("tab: next field  enter: apply  esc: cancel"),
	}
	if m.formErr != "" {
		lines = append(lines, warnStyle.Render(m.formErr))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) updateLimitForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.formErr = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyLimitForm(); err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.editing = false
		m.formErr = ""
		m.recompute()
		return m, nil
	case tea.KeyTab:
		return m, m.setFormIndex(m.formIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFormIndex(m.formIndex - 1)
	}
	var cmd tea.Cmd
	if m.formIndex == 0 {
		m.kindInput, cmd = m.kindInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) startLimitForm() (tea.Model, tea.Cmd) {
	m.editing = true
	m.formErr = ""
	if m.hasLimit {
		m.kindInput.SetValue(m.limitKind.String())
		m.valueInput.SetValue(strconv.Itoa(m.limitValue))
	} else {
		m.kindInput.SetValue("")
		m.valueInput.SetValue("")
	}
	return m, m.setFormIndex(0)
}

func (m *Model) setFormIndex(idx int) tea.Cmd {
	if idx < 0 {
		idx = 1
	}
	if idx > 1 {
		idx = 0
	}
	m.formIndex = idx
	if m.formIndex == 0 {
		m.valueInput.Blur()
		return m.kindInput.Focus()
	}
	m.kindInput.Blur()
	return m.valueInput.Focus()
}

// applyLimitForm parses the form fields. An empty kind clears the limit.
func (m *Model) applyLimitForm() error {
	kindValue := strings.TrimSpace(m.kindInput.Value())
	if kindValue == "" {
		m.hasLimit = false
		m.limitValue = 0
		return nil
	}
	kind, err := metrics.ParseLimitKind(kindValue)
	if err != nil {
		return err
	}
	value := 0
	if raw := strings.TrimSpace(m.valueInput.Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid limit value (use 0 or a positive integer)")
		}
		value = parsed
	}
	m.hasLimit = true
	m.limitKind = kind
	m.limitValue = value
	return nil
}

func (m *Model) insertRunes(runes []rune) {
	if len(runes) == 0 {
		return
	}
	out := make([]rune, 0, len(m.content)+len(runes))
	out = append(out, m.content[:m.cursor]...)
	out = append(out, runes...)
	out = append(out, m.content[m.cursor:]...)
	m.content = out
	m.cursor += len(runes)
	m.markEdited()
}

func (m *Model) deleteBeforeCursor() {
	if m.cursor == 0 {
		return
	}
	m.content = append(m.content[:m.cursor-1], m.content[m.cursor:]...)
	m.cursor--
	m.markEdited()
}

func (m *Model) deleteAtCursor() {
	if m.cursor >= len(m.content) {
		return
	}
	m.content = append(m.content[:m.cursor], m.content[m.cursor+1:]...)
	m.markEdited()
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.content) {
		m.cursor = len(m.content)
	}
}

func (m *Model) moveVertical(delta int) {
	spans := layoutLines(m.content, m.textWidth())
	line := cursorLine(spans, m.cursor)
	target := line + delta
	if target < 0 || target >= len(spans) {
		return
	}
	col := m.cursor - spans[line].start
	span := spans[target]
	if max := span.end - span.start; col > max {
		col = max
	}
	m.cursor = span.start + col
}

func (m *Model) moveLineStart() {
	spans := layoutLines(m.content, m.textWidth())
	m.cursor = spans[cursorLine(spans, m.cursor)].start
}

func (m *Model) moveLineEnd() {
	spans := layoutLines(m.content, m.textWidth())
	m.cursor = spans[cursorLine(spans, m.cursor)].end
}

func (m *Model) markEdited() {
	m.dirty = true
	m.recompute()
}

func (m *Model) recompute() {
	text := string(m.content)
	m.counts = metrics.CountAll(text)
	if m.hasLimit {
		m.overflow = metrics.DetectOverflow(text, m.limitKind, m.limitValue)
	} else {
		m.overflow = metrics.OverflowResult{Boundary: len(m.content)}
	}
	if reading, err := metrics.EstimateReadingTime(m.counts.Words, m.wpm); err == nil {
		m.reading = reading
	}
}

// saveDraft writes the buffer to its file when one was given and records a
// snapshot either way.
func (m *Model) saveDraft() {
	text := string(m.content)
	if m.path != "" {
		if err := os.WriteFile(m.path, []byte(text), 0o644); err != nil {
			logErrf("failed to write %s: %v\n", m.path, err)
			return
		}
	}
	snap := model.Snapshot{
		SavedAt:    time.Now(),
		Title:      m.title,
		SourcePath: m.path,
		WordCount:  m.counts.Words,
		Content:    text,
	}
	if _, err := m.store.InsertSnapshot(context.Background(), snap); err != nil {
		logErrf("failed to save snapshot: %v\n", err)
		return
	}
	m.dirty = false
	m.savedAt = snap.SavedAt
}

func (m *Model) ensureVisible(line, total, height int) {
	if m.scroll > line {
		m.scroll = line
	}
	if line >= m.scroll+height {
		m.scroll = line - height + 1
	}
	maxScroll := total - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) textWidth() int {
	if m.width <= 0 {
		return 80
	}
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

func newLimitInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func defaultTitle(path string) string {
	if path == "" {
		return "untitled"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
