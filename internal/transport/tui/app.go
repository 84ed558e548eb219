package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	feedDomain "github.com/reshetovitsme/gallery-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/gallery/domain"
	"github.com/reshetovitsme/gallery-feed/internal/modules/gallery/service"
	navService "github.com/reshetovitsme/gallery-feed/internal/modules/navigation/service"
)

const emptyMessage = "No posts found. Try removing filters or add images to your database."

// Refresher delivers feed results and accepts manual refresh requests
type Refresher interface {
	Start()
	Refresh()
	Results() <-chan service.Result
}

// HeightObserver is told the rendered height of the gallery
type HeightObserver interface {
	Observe(height int)
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Query    domain.Query
	Layout   domain.Layout
	Reels    bool
	Poller   Refresher
	Observer HeightObserver
}

type App struct {
	query    domain.Query
	layout   domain.Layout
	poller   Refresher
	observer HeightObserver

	gallery *service.Gallery
	nav     *navService.Controller
	cursor  int

	width  int
	height int

	spinner spinner.Model
	loading bool
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	nav := navService.New()
	g := service.NewGallery(nav)
	g.SetReels(opts.Reels)

	return &App{
		query:    opts.Query,
		layout:   opts.Layout,
		poller:   opts.Poller,
		observer: opts.Observer,
		gallery:  g,
		nav:      nav,
		spinner:  sp,
		loading:  true,
	}
}

// Run starts the terminal gallery and blocks until the user quits.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	a.poller.Start()
	return tea.Batch(a.waitForResult(), a.spinner.Tick)
}

// waitForResult blocks on the poller; a closed channel ends the chain.
func (a *App) waitForResult() tea.Cmd {
	results := a.poller.Results()
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return nil
		}
		return feedResultMsg{result: r}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case feedResultMsg:
		a.loading = false
		a.gallery.Apply(msg.result)
		a.clampCursor()
		return a, a.waitForResult()

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.nav.State().Open {
		return a.handleLightboxKey(key)
	}
	return a.handleGridKey(key)
}

func (a *App) handleLightboxKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left", "h":
		a.nav.StepPrev()
	case "right", "l":
		a.nav.StepNext()
	case "esc", "backspace":
		a.nav.Close()
	case "q":
		return a, tea.Quit
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			a.nav.JumpSlide(int(key[0] - '1'))
		}
	}
	return a, nil
}

func (a *App) handleGridKey(key string) (tea.Model, tea.Cmd) {
	items := a.gallery.Items()
	cols := a.layout.Columns

	switch key {
	case "q", "esc":
		return a, tea.Quit
	case "left", "h":
		a.cursor--
	case "right", "l":
		a.cursor++
	case "up", "k":
		a.cursor -= cols
	case "down", "j":
		a.cursor += cols
	case "enter":
		if len(items) > 0 {
			a.nav.OpenAt(a.cursor, 0)
		}
	case "v":
		a.gallery.SetReels(!a.gallery.Reels())
		a.cursor = 0
	case "r":
		a.poller.Refresh()
		if !a.loading {
			a.loading = true
			return a, a.spinner.Tick
		}
	}
	a.clampCursor()
	return a, nil
}

func (a *App) clampCursor() {
	n := len(a.gallery.Items())
	a.cursor = max(0, min(a.cursor, n-1))
}

func (a *App) View() string {
	sections := []string{a.renderHeader()}

	if err := a.gallery.Err(); err != nil {
		sections = append(sections, errorStyle.Render("⚠ "+err.Error()))
	}

	if a.nav.State().Open {
		sections = append(sections, a.renderLightbox())
	} else {
		sections = append(sections, a.renderGrid())
	}
	sections = append(sections, a.renderStatusBar())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if a.observer != nil {
		a.observer.Observe(lipgloss.Height(view))
	}
	return view
}

func (a *App) renderHeader() string {
	grid, reels := tabActiveStyle, tabInactiveStyle
	if a.gallery.Reels() {
		grid, reels = tabInactiveStyle, tabActiveStyle
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, grid.Render("Grid"), " ", reels.Render("Reels"))
	return lipgloss.JoinHorizontal(lipgloss.Center, headerStyle.Render("gallery"), "  ", tabs)
}

func (a *App) renderGrid() string {
	items := a.gallery.Items()
	if len(items) == 0 {
		if a.gallery.Loaded() && a.gallery.Err() == nil {
			return emptyStyle.Render(emptyMessage)
		}
		return ""
	}

	cols := a.layout.Columns
	cellWidth := a.cellWidth()

	var rows []string
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, a.renderCell(items[i], i == a.cursor, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) cellWidth() int {
	if a.width == 0 {
		return 24
	}
	// border and padding take four columns per cell
	return max(8, a.width/a.layout.Columns-4)
}

func (a *App) renderCell(item feedDomain.Item, selected bool, width int) string {
	style := cellStyle
	if selected {
		style = cellSelectedStyle
	}

	badge := " "
	if item.HasVideoCover() {
		badge = videoBadgeStyle.Render("▶")
	}
	title := cellTitleStyle.Render(truncateStr(item.Title, width-2))
	meta := cellMetaStyle.Render(truncateStr(fmt.Sprintf("%d media  %s", len(item.Media), item.Date), width))

	return style.Width(width).Render(badge + " " + title + "\n" + meta)
}

func (a *App) renderLightbox() string {
	item, media, ok := a.nav.Current()
	if !ok {
		return ""
	}
	s := a.nav.State()

	var b strings.Builder
	b.WriteString(cellTitleStyle.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(slideStyle.Render(fmt.Sprintf("%s %d/%d", media.Kind, s.Slide+1, len(item.Media))))
	b.WriteString("\n\n")
	b.WriteString(urlStyle.Render(media.URL))
	if item.Caption != "" {
		b.WriteString("\n\n")
		b.WriteString(item.Caption)
	}
	if meta := strings.TrimSpace(item.Date + "  " + item.Status); meta != "" {
		b.WriteString("\n\n")
		b.WriteString(cellMetaStyle.Render(meta))
	}

	style := lightboxStyle
	if a.width > 0 {
		style = style.Width(max(20, a.width-4))
	}
	return style.Render(b.String())
}

func (a *App) renderStatusBar() string {
	var left string
	if a.loading {
		left = a.spinner.View() + " loading"
	} else {
		left = fmt.Sprintf("%d posts", len(a.gallery.Items()))
	}

	help := "←/→ move  enter open  v reels  r refresh  q quit"
	if a.nav.State().Open {
		help = "←/→ slide  1-9 jump  esc close"
	}

	bar := left + "  " + help
	if a.width > 0 {
		return statusBarStyle.Width(a.width).Render(truncateStr(bar, a.width-2))
	}
	return statusBarStyle.Render(bar)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
