package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-floodfill/internal/core"
	"github.com/vovakirdan/tui-floodfill/internal/registry"
	"github.com/vovakirdan/tui-floodfill/internal/storage"
)

// chromeHeight is the number of terminal rows below the game screen:
// the notice line and the help bar.
const chromeHeight = 2

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	notice     string
	noticeSeq  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = screenHeight(cfg.ScreenH)

	if binder, ok := game.(registry.ScoreBinder); ok && store != nil {
		binder.BindScores(store)
	}
	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

func screenHeight(termH int) int {
	if termH-chromeHeight < 1 {
		return 1
	}
	return termH - chromeHeight
}

// Init implements tea.Model. The game is already running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keyMapper.MapMouseToFrame(msg, &m.inputFrame) {
			return m.step()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ClockMsg:
		// The session already ticked on the clock goroutine
		m.gameState = m.game.State()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.showNotice(m.saveScreenshot())
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Empty() {
		return m, nil
	}
	return m.step()
}

// step runs the game on the collected input.
func (m Model) step() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	won := result.State.Won && !m.gameState.Won
	m.gameState = result.State
	if won {
		log.Info("game won", "game", m.game.ID(), "score", result.State.Score)
	}

	if result.Notice != "" {
		return m.showNotice(result.Notice)
	}
	return m, nil
}

// showNotice displays text on the status line for NoticeDuration.
func (m Model) showNotice(text string) (tea.Model, tea.Cmd) {
	if text == "" {
		return m, nil
	}
	m.notice = text
	m.noticeSeq++
	return m, noticeCmd(m.noticeSeq)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = screenHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		// Games without resize support start over at the new size
		m.game.Reset(m.config)
	}

	return m, nil
}

// saveScreenshot saves the current screen to a file and returns a notice.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("cannot save screenshot", "error", err)
		return "Screenshot failed"
	}
	dir := filepath.Join(home, ".floodfill", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("cannot save screenshot", "error", err)
		return "Screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("cannot save screenshot", "path", path, "error", err)
		return "Screenshot failed"
	}
	log.Debug("screenshot saved", "path", path)
	return "Screenshot saved"
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(theme.Notice.Render(m.notice))
	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keyMapper.Keys)))
	return b.String()
}

// Notice returns the message currently on the status line.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program for the game. Games with a wall-clock
// timer get a clock goroutine whose ticks are forwarded to the program.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks fill cells and pick colors
	)

	if clocked, ok := game.(registry.Clocked); ok {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		stop := clocked.StartClock(ctx, func() { p.Send(ClockMsg{}) })
		defer stop()
	}

	_, err := p.Run()
	return err
}
