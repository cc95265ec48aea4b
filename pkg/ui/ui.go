// Package ui provides the interactive notice preview for attest.
package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osintkit/attest/pkg/keys"
	"github.com/osintkit/attest/pkg/ui/notice"
	"github.com/osintkit/attest/pkg/ui/statusbar"
	"github.com/osintkit/attest/pkg/ui/themes"
	"github.com/osintkit/attest/pkg/ui/view"
)

// Source supplies the notice configuration, and reloads it on request.
type Source interface {
	Path() string
	Reload() (*notice.Config, error)
}

// NewProgram returns a new Tea program running the notice preview.
func NewProgram(cfg *Config, noticeCfg *notice.Config, src Source) *tea.Program {
	slog.Debug("starting attest ui")

	return tea.NewProgram(
		adapter{NewModel(cfg, noticeCfg, src)},
		tea.WithAltScreen(),
	)
}

type (
	// ConfigReloadedMsg carries a freshly loaded notice configuration.
	// The CLI sends it when the config file changes on disk.
	ConfigReloadedMsg struct {
		Notice *notice.Config
	}

	// ErrMsg surfaces a failure in the status bar.
	ErrMsg struct{ Err error } //nolint:errname // Tea message.

	statusMessageTimeoutMsg struct{}
)

func (e ErrMsg) Error() string { return e.Err.Error() }

// State is the top-level view state.
type State int

const (
	stateReady State = iota
	stateLoading
)

const statusMessageTimeout = 3 * time.Second

type statusMessage struct {
	message string
	style   statusbar.Style
}

// Model is the preview TUI model.
type Model struct {
	src         Source
	theme       *themes.Theme
	kb          *KeyBinds
	statusTimer *time.Timer
	err         error
	lastReload  time.Time
	statusMsg   statusMessage
	minDelay    time.Duration
	spinner     spinner.Model
	variant     notice.Variant
	width       int
	height      int
	state       State
	showHelp    bool
	showStatus  bool
}

func NewModel(cfg *Config, noticeCfg *notice.Config, src Source) Model {
	cfg.EnsureDefaults()

	theme := themes.NewTheme(cfg.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = theme.GenericTextStyle

	variant := notice.VariantDefault
	if noticeCfg != nil {
		variant = noticeCfg.Variant
	}

	return Model{
		src:      src,
		theme:    theme,
		kb:       cfg.KeyBinds,
		minDelay: *cfg.MinimumDelay,
		spinner:  sp,
		variant:  variant,
		state:    stateReady,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

//nolint:cyclop // Message dispatch.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd

			m.spinner, cmd = m.spinner.Update(msg)

			return m, cmd
		}

	case ConfigReloadedMsg:
		m.state = stateReady
		m.err = nil
		m.lastReload = time.Now()

		if msg.Notice != nil {
			m.variant = msg.Notice.Variant
		}

		return m, m.sendStatusMessage("Configuration reloaded", statusbar.StyleSuccess)

	case ErrMsg:
		m.state = stateReady
		m.err = msg.Err

		return m, m.sendStatusMessage(msg.Err.Error(), statusbar.StyleError)

	case statusMessageTimeoutMsg:
		m.showStatus = false
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	switch {
	case m.kb.Quit.Match(key):
		return m, tea.Quit

	case m.kb.Help.Match(key):
		m.showHelp = !m.showHelp

	case m.kb.Variant.Match(key):
		if m.variant.Prominent() {
			m.variant = notice.VariantDefault
		} else {
			m.variant = notice.VariantProminent
		}

	case m.kb.Reload.Match(key):
		if m.src == nil || m.state == stateLoading {
			break
		}

		m.state = stateLoading

		return m, tea.Batch(m.spinner.Tick, m.reloadCmd())

	case m.kb.Copy.Match(key):
		err := clipboard.WriteAll(ansi.Strip(m.noticeView()))
		if err != nil {
			return m, m.sendStatusMessage(
				fmt.Sprintf("copy failed: %v", err), statusbar.StyleError)
		}

		return m, m.sendStatusMessage("Copied notice to clipboard", statusbar.StyleSuccess)
	}

	return m, nil
}

// reloadCmd reloads the notice config off the update loop. Reloads faster
// than the minimum delay are padded so the spinner does not flicker.
func (m Model) reloadCmd() tea.Cmd {
	src := m.src
	minDelay := m.minDelay

	return func() tea.Msg {
		start := time.Now()

		cfg, err := src.Reload()

		if elapsed := time.Since(start); elapsed < minDelay {
			time.Sleep(minDelay - elapsed)
		}

		if err != nil {
			return ErrMsg{Err: err}
		}

		return ConfigReloadedMsg{Notice: cfg}
	}
}

func (m *Model) sendStatusMessage(msg string, style statusbar.Style) tea.Cmd {
	m.showStatus = true
	m.statusMsg = statusMessage{
		message: msg,
		style:   style,
	}

	if m.statusTimer != nil {
		m.statusTimer.Stop()
	}

	m.statusTimer = time.NewTimer(statusMessageTimeout)

	timer := m.statusTimer

	return func() tea.Msg {
		<-timer.C

		return statusMessageTimeoutMsg{}
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	body := m.noticeView()
	if m.state == stateLoading {
		body = m.spinner.View() + " Reloading configuration " + m.theme.Ellipsis
	}

	content := lipgloss.Place(m.width, max(0, m.height-m.footerHeight()),
		lipgloss.Center, lipgloss.Center, body)

	vb := view.NewBuilder().AddSection(content)

	if m.showHelp {
		help := keys.InlineHelp(m.width, m.kb.GetKeyBinds()...)
		vb.AddSection(m.theme.HelpStyle.Width(m.width).Render(help))
	}

	vb.AddSection(m.statusBarView())

	return vb.Build()
}

func (m Model) noticeView() string {
	return notice.NewRenderer(
		notice.WithTheme(m.theme),
		notice.WithVariant(m.variant),
		notice.WithWidth(min(m.width, notice.DefaultWidth+8)),
	).Render()
}

func (m Model) statusBarView() string {
	opts := []statusbar.RendererOpt{}
	if m.showStatus && m.statusMsg.message != "" {
		if m.statusMsg.style == statusbar.StyleError {
			opts = append(opts, statusbar.WithError(m.statusMsg.message))
		} else {
			opts = append(opts, statusbar.WithMessage(m.statusMsg.message, m.statusMsg.style))
		}
	}

	msg := ""
	if m.src != nil {
		msg = m.src.Path()
	}

	if !m.lastReload.IsZero() {
		msg = fmt.Sprintf("%s • reloaded %s", msg, humanize.Time(m.lastReload))
	}

	return statusbar.NewRenderer(m.theme, m.width, opts...).
		Render(msg, string(m.variant))
}

func (m Model) footerHeight() int {
	if m.showHelp {
		return 2
	}

	return 1
}

// adapter satisfies [tea.Model] for the concrete [Model].
type adapter struct {
	model Model
}

func (a adapter) Init() tea.Cmd {
	return a.model.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (a adapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.model.Update(msg)
	return adapter{model: m}, cmd
}

func (a adapter) View() string {
	return a.model.View()
}
