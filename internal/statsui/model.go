// Package statsui provides the Bubble Tea stats dashboard.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkform/galley/internal/metrics"
	"github.com/inkform/galley/internal/model"
	"github.com/inkform/galley/internal/report"
	"github.com/inkform/galley/internal/store"
	"github.com/inkform/galley/internal/syllable"
)

const (
	tabCounts = iota
	tabTopWords
	tabReadability
	tabHistory
)

const recentSnapshots = 10

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI over a fixed text.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	text      string
	stopWords map[string]struct{}

	counts  metrics.CountResult
	stats   metrics.TextStatistics
	scores  metrics.ReadabilityResult
	scoreOK bool
	reading metrics.ReadingTime
	window  int

	snapshots []model.SnapshotSummary
	histErr   string

	tabs      []string
	activeTab int
	viewports []viewport.Model
	wordTable table.Model

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string
}

// NewModel constructs a stats UI model. window smooths the history
// sparkline; stopWords may be nil for the built-in list.
func NewModel(st *store.Store, cfg model.StatsConfig, window int, text string, stopWords map[string]struct{}) *Model {
	m := &Model{
		store:     st,
		cfg:       cfg,
		text:      text,
		stopWords: stopWords,
		window:    window,
		tabs:      []string{"Counts", "Top Words", "Readability", "History"},
	}
	if m.cfg.TopWords <= 0 {
		m.cfg.TopWords = metrics.DefaultTopWords
	}
	if m.cfg.WordsPerMinute <= 0 {
		m.cfg.WordsPerMinute = metrics.DefaultWordsPerMinute
	}
	if m.window < 1 {
		m.window = 1
	}
	m.initInputs()
	m.initWordTable()
	m.initViewports()
	m.recompute()
	m.refreshSnapshots()
	m.renderTabContents()
	return m
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
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == tabTopWords {
			m.wordTable.Focus()
		} else {
			m.wordTable.Blur()
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.window++
			m.renderTabContents()
			return m, nil
		case "-":
			if m.window > 1 {
				m.window--
			}
			m.renderTabContents()
			return m, nil
		case "/":
			return m.startFilter()
		case "g", "home":
			if m.activeTab == tabTopWords {
				m.wordTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabTopWords {
				m.wordTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabTopWords {
				var cmd tea.Cmd
				m.wordTable, cmd = m.wordTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newSettingsInput("Top words: "),
		newSettingsInput("WPM: "),
		newSettingsInput("Window: "),
	}
	m.setInputsFromConfig()
}

func (m *Model) initWordTable() {
	cols, rows := buildWordTableData(nil, 0)
	m.wordTable = table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(1),
	)
	m.wordTable.SetStyles(wordTableStyles())
}

func newSettingsInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) setInputsFromConfig() {
	if len(m.filterInputs) == 0 {
		return
	}
	m.filterInputs[0].SetValue(strconv.Itoa(m.cfg.TopWords))
	m.filterInputs[1].SetValue(strconv.Itoa(m.cfg.WordsPerMinute))
	m.filterInputs[2].SetValue(strconv.Itoa(m.window))
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.histErr != "" {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.wordTable.SetWidth(m.width)
	m.wordTable.SetHeight(maxInt(1, bodyHeight-1))
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = maxInt(10, m.width-promptWidth-2)
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabTopWords {
		m.wordTable.Focus()
	} else {
		m.wordTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	settings := padLines(m.renderSettingsSummary(), m.width)
	return tabs + "\n" + settings
}

func (m *Model) renderSettingsSummary() string {
	stop := "built-in"
	if m.cfg.StopWordsPath != "" {
		stop = filepath.Base(m.cfg.StopWordsPath)
	}
	summary := fmt.Sprintf("Settings: top=%d  wpm=%d  window=%d  stopwords=%s",
		m.cfg.TopWords, m.cfg.WordsPerMinute, m.window, stop)
	summary = truncateLine(summary, m.width)
	return headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q"
	return headerStyle.Render(help)
}

func (m *Model) renderFilterHelp() string {
	return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: q")
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.renderFilterHelp()
	}
	if m.histErr != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.histErr)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody() string {
	_, bodyHeight, _ := m.layoutHeights()
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, bodyHeight)
	}
	if m.activeTab == tabTopWords {
		switch {
		case m.counts.Words == 0:
			return fitLines("No text to analyze.", m.width, bodyHeight)
		case len(m.stats.TopWords) == 0:
			return fitLines("No words found.", m.width, bodyHeight)
		default:
			view := tableMutedStyle.Render(m.wordTable.View())
			return fitLines(view, m.width, bodyHeight)
		}
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, bodyHeight)
}

func (m *Model) recompute() {
	m.counts = metrics.CountAll(m.text)
	m.stats = metrics.AnalyzeStatisticsWithStopWords(m.text, m.cfg.TopWords, m.stopWords)
	m.scores, m.scoreOK = metrics.AnalyzeReadability(m.text, syllable.Estimate)
	if reading, err := metrics.EstimateReadingTime(m.counts.Words, m.cfg.WordsPerMinute); err == nil {
		m.reading = reading
	}
	cols, rows := buildWordTableData(m.stats.TopWords, m.counts.Words)
	m.wordTable.SetColumns(cols)
	m.wordTable.SetRows(rows)
}

func (m *Model) refreshSnapshots() {
	snaps, err := m.store.ListSnapshots(context.Background(), model.SnapshotFilter{})
	if err != nil {
		m.histErr = err.Error()
		return
	}
	m.histErr = ""
	m.snapshots = snaps
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[tabCounts].SetContent(m.renderCountsTab(width))
	m.viewports[tabReadability].SetContent(m.renderReadabilityTab())
	m.viewports[tabHistory].SetContent(m.renderHistoryTab(width))
}

func (m *Model) renderCountsTab(width int) string {
	if strings.TrimSpace(m.text) == "" {
		return "No text to analyze."
	}
	cards := []string{
		metricCard("Words", fmt.Sprintf("%d", m.counts.Words)),
		metricCard("Characters", fmt.Sprintf("%d", m.counts.Characters)),
		metricCard("No Spaces", fmt.Sprintf("%d", m.counts.CharactersNoSpaces)),
		metricCard("Paragraphs", fmt.Sprintf("%d", m.counts.Paragraphs)),
		metricCard("Sentences", fmt.Sprintf("%d", m.counts.Sentences)),
		metricCard("Reading Time", m.reading.Label),
	}
	extra := []string{
		headerStyle.Render(fmt.Sprintf("Avg word length: %.2f", m.stats.AvgWordLength)),
		headerStyle.Render(fmt.Sprintf("Avg sentence length: %.2f words", m.stats.AvgSentenceLength)),
		headerStyle.Render(fmt.Sprintf("Unique words: %d", m.stats.UniqueWords)),
	}
	if m.stats.Longest.Word != "" {
		extra = append(extra, headerStyle.Render(fmt.Sprintf("Longest word: %s (%d)", m.stats.Longest.Word, m.stats.Longest.Length)))
	}
	if width < 80 {
		return strings.Join(append(cards, extra...), "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2, strings.Join(extra, "\n"))
}

func (m *Model) renderReadabilityTab() string {
	if !m.scoreOK {
		return "Not enough text to score."
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Flesch-Kincaid", fmt.Sprintf("%.1f", m.scores.FleschKincaid.Grade)),
		metricCard("Coleman-Liau", fmt.Sprintf("%.1f", m.scores.ColemanLiau.Grade)),
		metricCard("Reading Ease", fmt.Sprintf("%.1f", m.scores.FleschReadingEase.Score)),
	)
	labels := strings.Join([]string{
		headerStyle.Render("Flesch-Kincaid: " + m.scores.FleschKincaid.Label),
		headerStyle.Render("Coleman-Liau: " + m.scores.ColemanLiau.Label),
		headerStyle.Render("Reading Ease: " + m.scores.FleschReadingEase.Label),
	}, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, cards, labels)
}

func (m *Model) renderHistoryTab(width int) string {
	if m.histErr != "" {
		return fmt.Sprintf("Failed to load history: %s", m.histErr)
	}
	if len(m.snapshots) == 0 {
		return "No snapshots found."
	}
	var buf bytes.Buffer
	if err := report.RenderHistory(&buf, m.snapshots, m.window, width); err != nil {
		return fmt.Sprintf("Failed to render history: %v", err)
	}
	var recent bytes.Buffer
	if err := report.RenderSnapshots(&recent, report.LastN(m.snapshots, recentSnapshots)); err != nil {
		return fmt.Sprintf("Failed to render snapshots: %v", err)
	}
	return strings.TrimRight(buf.String()+"\n"+recent.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildWordTableData(words []metrics.WordCount, totalWords int) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Word", Width: 24},
		{Title: "Count", Width: 7},
		{Title: "Share", Width: 7},
	}
	rows := make([]table.Row, 0, len(words))
	for i, wc := range words {
		share := 0.0
		if totalWords > 0 {
			share = float64(wc.Count) / float64(totalWords) * 100
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			wc.Word,
			fmt.Sprintf("%d", wc.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	return columns, rows
}

func wordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromConfig()
	return m, m.setFilterIndex(0)
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.recompute()
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if count == 0 {
		return nil
	}
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	top, err := parsePositiveInt(m.filterInputs[0].Value(), m.cfg.TopWords)
	if err != nil {
		return fmt.Errorf("invalid top words (use integer >= 1)")
	}
	wpm, err := parsePositiveInt(m.filterInputs[1].Value(), m.cfg.WordsPerMinute)
	if err != nil {
		return fmt.Errorf("invalid wpm (use integer >= 1)")
	}
	window, err := parsePositiveInt(m.filterInputs[2].Value(), m.window)
	if err != nil {
		return fmt.Errorf("invalid window (use integer >= 1)")
	}
	m.cfg.TopWords = top
	m.cfg.WordsPerMinute = wpm
	m.window = window
	return nil
}

// parsePositiveInt keeps the fallback when the field is blank.
func parsePositiveInt(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return 0, fmt.Errorf("invalid value %q", raw)
	}
	return parsed, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
