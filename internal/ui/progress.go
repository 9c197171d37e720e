package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Progress creates progress widgets appropriate for the current mode.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar

	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// progressImpl implements Progress.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless
// manager. Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: os.Stdout}
}

// newProgressImpl creates a progressImpl with a custom writer (for testing).
func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start creates a determinate progress bar. In headless mode it returns a
// log-based bar.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &headlessBar{title: title, total: total, writer: p.writer}
	}
	return newInteractiveBar(p.theme, title, total)
}

// Spinner creates an indeterminate spinner. In headless mode it prints
// the title as a log line.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title)
}

// --- interactive widgets ---

type barIncrMsg int
type barTitleMsg string
type barDoneMsg struct{}

// barModel is the bubbletea Model for the animated progress bar.
type barModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barIncrMsg:
		m.current += int(msg)
		if m.current > m.total {
			m.current = m.total
		}
		return m, nil
	case barTitleMsg:
		m.title = string(msg)
		return m, nil
	case barDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + fmt.Sprintf(" [%d/%d] %s\n", m.current, m.total, m.title)
}

// interactiveBar implements ProgressBar with an animated bubbles bar.
type interactiveBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveBar(theme *Theme, title string, total int) *interactiveBar {
	p := tea.NewProgram(newBarModel(theme, title, total))
	b := &interactiveBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return b
}

// Increment advances the progress by n.
func (b *interactiveBar) Increment(n int) {
	b.program.Send(barIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveBar) SetTitle(title string) {
	b.program.Send(barTitleMsg(title))
}

// Done completes the progress bar.
func (b *interactiveBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}

type spinTitleMsg string
type spinStopMsg struct{}

// spinModel is the bubbletea Model for the animated spinner.
type spinModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinModel(theme *Theme, title string) spinModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinModel{spinner: s, title: title}
}

func (m spinModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinModel(theme, title))
	s := &interactiveSpinner{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinStopMsg{})
		s.program.Wait()
	})
}

// --- headless widgets ---

// headlessBar implements ProgressBar with plain text log output.
type headlessBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

// Increment advances the progress by n and writes a log line.
func (b *headlessBar) Increment(n int) {
	b.current += n
	if b.current > b.total {
		b.current = b.total
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// SetTitle updates the progress bar title.
func (b *headlessBar) SetTitle(title string) {
	b.title = title
}

// Done completes the progress bar.
func (b *headlessBar) Done() {
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	title  string
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{title: title, writer: w}
	_, _ = fmt.Fprintf(w, "%s\n", title)
	return s
}

// SetTitle updates the spinner title and prints a log line.
func (s *headlessSpinner) SetTitle(title string) {
	s.title = title
	_, _ = fmt.Fprintf(s.writer, "%s\n", title)
}

// Stop halts the spinner.
func (s *headlessSpinner) Stop() {}
