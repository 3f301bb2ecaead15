package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"driveshare/internal/api"
	"driveshare/internal/components"
	"driveshare/internal/domain"
	"driveshare/internal/session"
	"driveshare/internal/ui/coordinator"
	"driveshare/internal/ui/input"
	inputtypes "driveshare/internal/ui/input/types"
	"driveshare/internal/ui/views"
)

// tickInterval paces notification expiry
const tickInterval = 250 * time.Millisecond

// Tab labels, in tab bar order
var tabLabels = map[domain.Tab]string{
	domain.TabSearch:   "Search Cars",
	domain.TabBookings: "My Bookings",
	domain.TabMessages: "Messages",
	domain.TabProfile:  "Profile",
}

// Options configure a Model
type Options struct {
	API             components.Marketplace
	Tokens          session.Store
	Logger          *slog.Logger
	NotificationTTL time.Duration

	// Loop overrides the Bubble Tea loop; tests pass components.ImmediateLoop
	Loop components.Loop
}

// Model represents the UI state
type Model struct {
	coord  *coordinator.Coordinator
	logger *slog.Logger

	// Async work
	loop    components.Loop
	teaLoop *TeaLoop // nil when Loop was overridden

	// UI-specific state not owned by components
	width       int
	height      int
	selected    map[domain.Tab]int
	inlineForm  components.FormID // search or message form with the cursor
	focusedForm components.FormID
	inPagerMode bool

	// Handlers
	forms        *formSet
	inputHandler *input.Handler
	renderer     *views.Renderer
	keys         keyMap
	help         help.Model
	spinner      spinner.Model
	helpRenderer *HelpRenderer
	pager        *PagerOps
}

// NewModel creates a new UI model and every component behind it
func NewModel(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := &Model{
		logger:       logger.With("component", "ui"),
		selected:     make(map[domain.Tab]int),
		forms:        newFormSet(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		keys:         newKeyMap(),
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		pager:        NewPagerOps(),
	}
	m.helpRenderer = NewHelpRenderer(m.keys)

	m.loop = opts.Loop
	if m.loop == nil {
		m.teaLoop = NewTeaLoop(ctx)
		m.loop = m.teaLoop
	}

	m.coord = coordinator.New(coordinator.Options{
		API:             opts.API,
		Tokens:          opts.Tokens,
		Forms:           m.forms,
		Loop:            m.loop,
		Logger:          logger,
		NotificationTTL: opts.NotificationTTL,
	})
	return m
}

// Coordinator exposes the components behind the screen
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init restores the stored session and starts the background loops
func (m *Model) Init() tea.Cmd {
	m.coord.Start()

	cmds := []tea.Cmd{tick(), m.spinner.Tick}
	if m.teaLoop != nil {
		cmds = append(cmds, m.teaLoop.Wait())
	}
	cmds = append(cmds, m.reconcile())
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		for _, action := range m.inputHandler.HandleKey(msg, m.inputContext()) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case resumeMsg:
		if m.teaLoop != nil {
			m.teaLoop.run(msg)
			cmds = append(cmds, m.teaLoop.Wait())
		}

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		m.coord.Tick(time.Time(msg))
		cmds = append(cmds, tick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", "what", msg.what, "error", msg.err)
			m.coord.Mediator.Notify(domain.Notification{Severity: domain.SeverityError, Message: "Could not open the pager."})
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
		cmds = append(cmds, tick())

	default:
		// Cursor blink and friends go to the focused field
		if m.focusedForm != "" {
			cmds = append(cmds, m.forms.Update(m.focusedForm, msg))
		}
	}

	cmds = append(cmds, m.reconcile())
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	c := m.coord
	tab := c.Navigation.State().Active

	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.NavigateAction:
		m.navigate(tab, a.Direction)

	case inputtypes.SelectTabAction:
		m.selectTab(a.Tab)

	case inputtypes.CycleTabAction:
		tabs := m.visibleTabs()
		idx := 0
		for i, t := range tabs {
			if t == tab {
				idx = i
			}
		}
		m.selectTab(tabs[((idx+a.Delta)%len(tabs)+len(tabs))%len(tabs)])

	case inputtypes.OpenFormAction:
		m.openForm(a.Form)

	case inputtypes.FocusFieldAction:
		return m.forms.Move(m.activeForm(), a.Delta)

	case inputtypes.SubmitFormAction:
		m.submit(m.activeForm())

	case inputtypes.CancelFormAction:
		m.cancel(m.activeForm())

	case inputtypes.TypeAction:
		return m.forms.Update(m.activeForm(), a.Key)

	case inputtypes.BookSelectedAction:
		results := c.CarSearch.State().Results
		if i := m.selected[domain.TabSearch]; i < len(results) {
			c.CarSearch.RequestBooking(results[i].Button.CarID)
		}

	case inputtypes.PaySelectedAction:
		bookings := c.MyBookings.State().Bookings
		if i := m.selected[domain.TabBookings]; i < len(bookings) {
			c.MyBookings.Pay(bookings[i].ID)
		}

	case inputtypes.RefreshAction:
		switch tab {
		case domain.TabSearch:
			c.CarSearch.Fetch()
		case domain.TabBookings:
			c.MyBookings.Fetch()
		case domain.TabMessages:
			c.Inbox.Fetch()
		case domain.TabProfile:
			c.LoadUserInfo()
		}

	case inputtypes.LogoutAction:
		c.Auth.Logout()

	case inputtypes.ShowHelpAction:
		return m.showInPager("help", m.helpRenderer.RenderHelpContent())

	case inputtypes.ViewInboxAction:
		return m.showInPager("inbox", RenderInbox(c.Inbox.State()))
	}
	return nil
}

// activeForm is the form keys go to: an open dialog first, then a
// focused inline form
func (m *Model) activeForm() components.FormID {
	c := m.coord
	switch c.Auth.State().Modal {
	case components.ModalLogin:
		return components.FormLogin
	case components.ModalRegister:
		return components.FormRegister
	}
	if c.Booking.State().ModalOpen {
		return components.FormBooking
	}
	if c.CarListing.State().ModalOpen {
		return components.FormCarListing
	}
	return m.inlineForm
}

func (m *Model) openForm(form components.FormID) {
	c := m.coord
	switch form {
	case components.FormLogin:
		c.Auth.ShowModal(components.ModalLogin)
	case components.FormRegister:
		c.Auth.ShowModal(components.ModalRegister)
	case components.FormCarListing:
		c.CarListing.ShowModal()
	case components.FormSearch, components.FormMessage:
		m.inlineForm = form
	}
}

func (m *Model) submit(form components.FormID) {
	c := m.coord
	v := m.forms.Values(form)
	switch form {
	case components.FormLogin:
		c.Auth.Login(api.Credentials{
			Email:    v[components.FieldEmail],
			Password: v[components.FieldPassword],
		})
	case components.FormRegister:
		c.Auth.Register(api.Registration{
			Username:          v[components.FieldUsername],
			Email:             v[components.FieldEmail],
			Password:          v[components.FieldPassword],
			SecurityQuestion1: v[components.FieldQuestion1],
			SecurityAnswer1:   v[components.FieldAnswer1],
			SecurityQuestion2: v[components.FieldQuestion2],
			SecurityAnswer2:   v[components.FieldAnswer2],
			SecurityQuestion3: v[components.FieldQuestion3],
			SecurityAnswer3:   v[components.FieldAnswer3],
		})
	case components.FormSearch:
		m.inlineForm = ""
		m.selected[domain.TabSearch] = 0
		c.CarSearch.Submit(components.SearchForm{
			Location:  v[components.FieldLocation],
			StartDate: v[components.FieldStartDate],
			EndDate:   v[components.FieldEndDate],
		})
	case components.FormBooking:
		c.Booking.Submit(api.BookingRequest{
			CarID:     v[components.FieldCarID],
			StartDate: v[components.FieldStartDate],
			EndDate:   v[components.FieldEndDate],
		})
	case components.FormCarListing:
		c.CarListing.Submit(components.CarListingForm{
			Make:        v[components.FieldMake],
			Model:       v[components.FieldModel],
			Year:        v[components.FieldYear],
			PricePerDay: v[components.FieldPricePerDay],
			Location:    v[components.FieldLocation],
		})
	case components.FormMessage:
		m.inlineForm = ""
		c.Messaging.Submit(api.OutgoingMessage{
			ReceiverEmail: v[components.FieldReceiverEmail],
			Content:       v[components.FieldContent],
		})
	}
}

func (m *Model) cancel(form components.FormID) {
	c := m.coord
	switch form {
	case components.FormLogin, components.FormRegister:
		c.Auth.CloseModals()
	case components.FormBooking:
		c.Booking.CloseForm()
	case components.FormCarListing:
		c.CarListing.CloseModal()
	default:
		m.inlineForm = ""
	}
}

func (m *Model) selectTab(tab domain.Tab) {
	m.inlineForm = ""
	m.coord.Navigation.Select(tab)
}

// visibleTabs lists the tabs in the tab bar
func (m *Model) visibleTabs() []domain.Tab {
	var tabs []domain.Tab
	for _, t := range domain.Tabs() {
		if t == domain.TabProfile && !m.coord.Auth.State().ProfileTabVisible {
			continue
		}
		tabs = append(tabs, t)
	}
	return tabs
}

// itemCount is the length of tab's list
func (m *Model) itemCount(tab domain.Tab) int {
	c := m.coord
	switch tab {
	case domain.TabSearch:
		return len(c.CarSearch.State().Results)
	case domain.TabBookings:
		return len(c.MyBookings.State().Bookings)
	case domain.TabMessages:
		return len(c.Inbox.State().Messages)
	}
	return 0
}

func (m *Model) navigate(tab domain.Tab, direction string) {
	n := m.itemCount(tab)
	if n == 0 {
		return
	}
	i := m.selected[tab]
	switch direction {
	case "up":
		i--
	case "down":
		i++
	case "home":
		i = 0
	case "end":
		i = n - 1
	}
	m.selected[tab] = min(max(i, 0), n-1)
}

// reconcile brings UI-only state in line with the components after every
// message: focus follows the active form, selections stay in range and the
// profile tab is left when it disappears.
func (m *Model) reconcile() tea.Cmd {
	c := m.coord
	if c.Navigation.State().Active == domain.TabProfile && !c.Auth.State().ProfileTabVisible {
		c.Navigation.Select(domain.TabSearch)
	}

	for _, tab := range domain.Tabs() {
		if n := m.itemCount(tab); m.selected[tab] >= n {
			m.selected[tab] = max(n-1, 0)
		}
	}

	form := m.activeForm()
	var cmd tea.Cmd
	if form != m.focusedForm {
		if m.focusedForm != "" {
			m.forms.Blur(m.focusedForm)
		}
		if form != "" {
			cmd = m.forms.Focus(form)
		}
		m.focusedForm = form
	}

	if form != "" {
		m.inputHandler.ChangeMode(inputtypes.ModeForm)
	} else {
		m.inputHandler.ChangeMode(inputtypes.ModeNormal)
	}
	return cmd
}

func (m *Model) inputContext() *input.ModelContext {
	tab := m.coord.Navigation.State().Active
	return &input.ModelContext{
		Tab:           tab,
		SelectedIndex: m.selected[tab],
		ItemCount:     m.itemCount(tab),
		IsLoggedIn:    m.coord.Auth.State().LoggedIn,
	}
}

// showInPager returns a command that shows content in the ov pager,
// pausing and resuming rendering around it
func (m *Model) showInPager(what, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{what: what, err: errNoProgram}
		}
		program.Send(pauseRenderingMsg{})
		err := m.pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	c := m.coord
	auth := c.Auth.State()
	active := c.Navigation.State().Active
	my := c.MyBookings.State()

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		ActiveTab:      active,
		LoggedIn:       auth.LoggedIn,
		SelectedIndex:  m.selected[active],
		Results:        c.CarSearch.State().Results,
		Bookings:       my.Bookings,
		BookingsLoaded: my.Loaded,
		Inbox:          c.Inbox.State(),
		InboxVisible:   auth.LoggedIn,
		Profile:        c.ProfileDisplay.State(),
		Toasts:         c.Notification.Toasts(),
		Spinner:        m.spinner.View(),
	}
	if m.teaLoop != nil {
		state.Pending = m.teaLoop.Pending()
	}

	for _, t := range m.visibleTabs() {
		state.Tabs = append(state.Tabs, views.TabView{Tab: t, Label: tabLabels[t], Active: t == active})
	}

	state.SearchForm = views.FormView{
		Title:  "Find a car",
		Fields: m.forms.Views(components.FormSearch),
		Active: m.focusedForm == components.FormSearch,
	}
	state.MessageForm = views.FormView{
		Title:  "Send a message",
		Fields: m.forms.Views(components.FormMessage),
		Active: m.focusedForm == components.FormMessage,
	}

	switch form := m.activeForm(); form {
	case components.FormLogin:
		state.Modal = &views.FormView{Title: "Login", Fields: m.forms.Views(form), Active: true}
	case components.FormRegister:
		state.Modal = &views.FormView{Title: "Register", Fields: m.forms.Views(form), Active: true}
	case components.FormBooking:
		state.Modal = &views.FormView{
			Title:  "Book car #" + c.Booking.State().CarID,
			Fields: m.forms.Views(form),
			Active: true,
		}
	case components.FormCarListing:
		state.Modal = &views.FormView{Title: "List your car", Fields: m.forms.Views(form), Active: true}
	}

	if m.focusedForm != "" {
		state.Footer = m.help.View(formKeys{m.keys})
	} else {
		state.Footer = m.help.ShortHelpView(m.keys.tabKeys(active, auth.LoggedIn))
	}
	return state
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
