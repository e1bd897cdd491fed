package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"waiter/internal/api"
	"waiter/internal/config"
	"waiter/internal/directory"
	"waiter/internal/models"
	"waiter/internal/session"
	"waiter/internal/workflow"
)

// View names for the screen switch.
const (
	viewLogin         = "login"
	viewCookBoard     = "cook_board"
	viewWaiterMenu    = "waiter_menu"
	viewDeliveryBoard = "delivery_board"
	viewCreateOrder   = "create_order"
	viewBrowse        = "browse"
	viewManagerMenu   = "manager_menu"
	viewUsersMenu     = "users_menu"
	viewUserCreate    = "user_create"
	viewUserDelete    = "user_delete"
	viewProductDelete = "product_delete"
)

var roleChoices = []models.EmployeeRole{models.RoleCook, models.RoleWaiter, models.RoleManager}

// Model defines the application state.
type Model struct {
	client   *api.Client
	sessions *session.Store
	log      zerolog.Logger

	currentView string
	role        session.Role
	errText     string
	notice      string
	loading     bool
	fetchGen    int

	spinner spinner.Model
	width   int
	height  int

	// login form
	loginInputs []textinput.Model
	loginFocus  int

	// cook board
	cookFilter models.Status
	cookItems  []models.OrderItem
	cookTable  table.Model

	// role menus
	waiterMenu  list.Model
	managerMenu list.Model
	usersMenu   list.Model

	// delivery board
	deliveryItems []workflow.DeliveryItem
	deliveryTable table.Model

	// user/product administration
	searchInput     textinput.Model
	users           []models.User
	visibleUsers    []models.User
	usersTable      table.Model
	products        []models.Product
	visibleProducts []models.Product
	productsTable   table.Model
	confirming      bool
	confirmingID    int

	// user creation form
	formInputs []textinput.Model
	formFocus  int
	formRole   int

	// order creation
	pending       *workflow.PendingOrder
	orderField    int
	pendingCursor int
	browseCat     models.Category
	browseList    list.Model
	noteInput     textinput.Model
	notingProduct *models.Product
}

// item represents a menu entry.
type item struct {
	title, desc string
}

func (i item) FilterValue() string { return i.title }
func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }

// productItem represents a product in the browse list.
type productItem struct {
	product models.Product
}

func (i productItem) FilterValue() string { return i.product.Name }
func (i productItem) Title() string       { return i.product.Name }
func (i productItem) Description() string {
	return fmt.Sprintf("%s - R$ %.2f", i.product.Description, i.product.Price)
}

// Initialize the model
func initialModel(client *api.Client, sessions *session.Store, log zerolog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	email := textinput.New()
	email.Placeholder = "e-mail"
	email.Focus()
	email.CharLimit = 80
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 80
	password.Width = 32

	cookTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Product", Width: 28},
			{Title: "Note", Width: 28},
			{Title: "Status", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	deliveryTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Product", Width: 28},
			{Title: "Table", Width: 6},
			{Title: "Note", Width: 28},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	usersTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "E-mail", Width: 28},
			{Title: "Role", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	productsTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Price", Width: 10},
			{Title: "Category", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	waiterMenu := newMenu("Waiter", []list.Item{
		item{title: "Deliveries", desc: "Ready items waiting to reach their table"},
		item{title: "New order", desc: "Compose an order for a table"},
		item{title: "Logout", desc: "End this session"},
	})
	managerMenu := newMenu("Manager", []list.Item{
		item{title: "Users", desc: "Create and remove staff accounts"},
		item{title: "Products", desc: "Remove products from the menu"},
		item{title: "Logout", desc: "End this session"},
	})
	usersMenu := newMenu("Users", []list.Item{
		item{title: "Create user", desc: "Register a new staff account"},
		item{title: "Delete user", desc: "Search and remove an account"},
		item{title: "Back", desc: "Return to the manager menu"},
	})

	search := textinput.New()
	search.Placeholder = "filter by name"
	search.CharLimit = 80
	search.Width = 32

	note := textinput.New()
	note.Placeholder = "note (optional)"
	note.CharLimit = 156
	note.Width = 40

	browseList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	browseList.Title = "Products"
	browseList.SetFilteringEnabled(false)

	return Model{
		client:        client,
		sessions:      sessions,
		log:           log,
		currentView:   viewLogin,
		spinner:       s,
		loginInputs:   []textinput.Model{email, password},
		cookFilter:    models.StatusToDo,
		cookTable:     cookTable,
		deliveryTable: deliveryTable,
		usersTable:    usersTable,
		productsTable: productsTable,
		waiterMenu:    waiterMenu,
		managerMenu:   managerMenu,
		usersMenu:     usersMenu,
		searchInput:   search,
		noteInput:     note,
		browseList:    browseList,
		formInputs:    newUserForm(),
	}
}

func newMenu(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 14)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	return l
}

func newUserForm() []textinput.Model {
	labels := []string{"name", "e-mail", "password", "cpf"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 80
		ti.Width = 32
		if label == "password" {
			ti.EchoMode = textinput.EchoPassword
		}
		inputs[i] = ti
	}
	inputs[0].Focus()
	return inputs
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tea.EnterAltScreen)
}

// nextFetch bumps the fetch generation; responses issued under an older
// generation are discarded when they arrive.
func (m *Model) nextFetch() int {
	m.fetchGen++
	m.loading = true
	return m.fetchGen
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.browseList.SetSize(msg.Width-h, msg.Height-v-6)
		m.waiterMenu.SetSize(msg.Width-h, 14)
		m.managerMenu.SetSize(msg.Width-h, 14)
		m.usersMenu.SetSize(msg.Width-h, 14)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case errorMsg:
		m.loading = false
		m.errText = msg.err
		return m, nil

	case loggedInMsg:
		m.loading = false
		m.errText = ""
		m.notice = ""
		m.role = msg.role
		switch msg.role {
		case session.RoleCook:
			m.currentView = viewCookBoard
			return m, fetchCookItems(m.client, m.cookFilter, m.nextFetch())
		case session.RoleWaiter:
			m.currentView = viewWaiterMenu
		case session.RoleManager:
			m.currentView = viewManagerMenu
		}
		return m, nil

	case cookItemsMsg:
		if msg.gen != m.fetchGen {
			return m, nil // superseded fetch, drop it
		}
		m.loading = false
		m.cookItems = msg.items
		m.cookTable.SetRows(cookRows(msg.items))
		return m, nil

	case deliveryItemsMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.loading = false
		m.deliveryItems = msg.items
		m.deliveryTable.SetRows(deliveryRows(msg.items))
		return m, nil

	case usersMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.loading = false
		m.users = msg.users
		m.applyUserFilter()
		return m, nil

	case productsMsg:
		if msg.gen != m.fetchGen {
			return m, nil
		}
		m.loading = false
		m.products = msg.products
		m.applyProductFilter()
		return m, nil

	case browseMsg:
		if msg.gen != m.fetchGen || m.pending == nil {
			// superseded fetch, or the order screen was already left
			return m, nil
		}
		m.loading = false
		m.browseCat = msg.category
		items := make([]list.Item, len(msg.products))
		for i, p := range msg.products {
			items[i] = productItem{product: p}
		}
		m.browseList.SetItems(items)
		m.browseList.Title = "Products - " + string(msg.category)
		m.currentView = viewBrowse
		return m, nil

	case itemAdvancedMsg:
		if m.currentView != viewCookBoard && m.currentView != viewDeliveryBoard {
			// board was left before the round trip finished; a re-fetch
			// here would go out with whatever session is now current
			return m, nil
		}
		// previous state stays on screen; re-fetch runs either way
		m.loading = false
		if msg.err != nil {
			m.errText = fmt.Sprintf("Error updating status: %v", msg.err)
		} else {
			m.errText = ""
			m.notice = "Status updated"
		}
		if m.currentView == viewDeliveryBoard {
			return m, fetchDeliveryItems(m.client, m.nextFetch())
		}
		return m, fetchCookItems(m.client, m.cookFilter, m.nextFetch())

	case userDeletedMsg:
		m.loading = false
		m.errText = ""
		m.notice = "User deleted"
		m.users = directory.RemoveUser(m.users, msg.id)
		m.applyUserFilter()
		return m, nil

	case productDeletedMsg:
		m.loading = false
		m.errText = ""
		m.notice = "Product deleted"
		m.products = directory.RemoveProduct(m.products, msg.id)
		m.applyProductFilter()
		return m, nil

	case userCreatedMsg:
		m.loading = false
		m.errText = ""
		m.notice = "User created"
		m.formInputs = newUserForm()
		m.formFocus = 0
		m.formRole = 0
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateKeys dispatches key handling to the active view.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case viewLogin:
		return m.updateLogin(msg)
	case viewCookBoard:
		return m.updateCookBoard(msg)
	case viewWaiterMenu:
		return m.updateWaiterMenu(msg)
	case viewDeliveryBoard:
		return m.updateDeliveryBoard(msg)
	case viewCreateOrder:
		return m.updateCreateOrder(msg)
	case viewBrowse:
		return m.updateBrowse(msg)
	case viewManagerMenu:
		return m.updateManagerMenu(msg)
	case viewUsersMenu:
		return m.updateUsersMenu(msg)
	case viewUserCreate:
		return m.updateUserCreate(msg)
	case viewUserDelete:
		return m.updateEntityDelete(msg, true)
	case viewProductDelete:
		return m.updateEntityDelete(msg, false)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		for i := range m.loginInputs {
			if i == m.loginFocus {
				m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		login := m.loginInputs[0].Value()
		password := m.loginInputs[1].Value()
		if login == "" || password == "" {
			m.errText = "E-mail and password are required"
			return m, nil
		}
		m.loading = true
		m.errText = ""
		return m, doLogin(m.client, m.sessions, login, password)
	}
	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) updateCookBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.logout()
	case "f", "tab":
		if m.cookFilter == models.StatusToDo {
			m.cookFilter = models.StatusDoing
		} else {
			m.cookFilter = models.StatusToDo
		}
		return m, fetchCookItems(m.client, m.cookFilter, m.nextFetch())
	case "r":
		return m, fetchCookItems(m.client, m.cookFilter, m.nextFetch())
	case "enter":
		idx := m.cookTable.Cursor()
		if idx < 0 || idx >= len(m.cookItems) {
			return m, nil
		}
		it := m.cookItems[idx]
		next, err := workflow.NextKitchenStatus(it.CurrentStatus())
		if err != nil {
			m.errText = fmt.Sprintf("Cannot advance item: %v", err)
			return m, nil
		}
		m.notice = ""
		return m, advanceItem(m.client, it.StatusControl.ID, next)
	}
	var cmd tea.Cmd
	m.cookTable, cmd = m.cookTable.Update(msg)
	return m, cmd
}

func (m Model) updateWaiterMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.logout()
	case "enter":
		selected, ok := m.waiterMenu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch selected.title {
		case "Deliveries":
			m.currentView = viewDeliveryBoard
			m.errText = ""
			m.notice = ""
			return m, fetchDeliveryItems(m.client, m.nextFetch())
		case "New order":
			m.currentView = viewCreateOrder
			m.pending = workflow.NewPendingOrder(1, 1)
			m.orderField = 0
			m.pendingCursor = 0
			m.errText = ""
			m.notice = ""
			return m, nil
		case "Logout":
			return m.logout()
		}
	}
	var cmd tea.Cmd
	m.waiterMenu, cmd = m.waiterMenu.Update(msg)
	return m, cmd
}

func (m Model) updateDeliveryBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.currentView = viewWaiterMenu
		return m, nil
	case "r":
		return m, fetchDeliveryItems(m.client, m.nextFetch())
	case "enter":
		idx := m.deliveryTable.Cursor()
		if idx < 0 || idx >= len(m.deliveryItems) {
			return m, nil
		}
		it := m.deliveryItems[idx]
		m.notice = ""
		return m, advanceItem(m.client, it.StatusControl.ID, workflow.DeliveryTarget)
	}
	var cmd tea.Cmd
	m.deliveryTable, cmd = m.deliveryTable.Update(msg)
	return m, cmd
}

func (m Model) updateCreateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// pending list is screen-local; leaving discards it
		m.pending = nil
		m.currentView = viewWaiterMenu
		return m, nil
	case "tab":
		m.orderField = (m.orderField + 1) % 3
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch m.orderField {
		case 0:
			m.pending.Table = clampField(m.pending.Table+delta, 1, workflow.MaxTable)
		case 1:
			m.pending.Tab = clampField(m.pending.Tab+delta, 1, workflow.MaxTab)
		}
		return m, nil
	case "up", "down":
		if m.orderField == 2 && !m.pending.Empty() {
			if msg.String() == "up" {
				m.pendingCursor--
			} else {
				m.pendingCursor++
			}
			m.pendingCursor = clampField(m.pendingCursor, 0, len(m.pending.Lines)-1)
		}
		return m, nil
	case "x":
		if m.orderField == 2 && !m.pending.Empty() {
			m.pending.RemoveAt(m.pendingCursor)
			if m.pendingCursor >= len(m.pending.Lines) && m.pendingCursor > 0 {
				m.pendingCursor--
			}
		}
		return m, nil
	case "1", "p":
		return m, fetchCategory(m.client, models.CategoryDish, m.nextFetch())
	case "2", "b":
		return m, fetchCategory(m.client, models.CategoryDrink, m.nextFetch())
	case "3", "d":
		return m, fetchCategory(m.client, models.CategoryDessert, m.nextFetch())
	case "s", "enter":
		if m.pending.Empty() {
			m.errText = "No items in the order yet"
			return m, nil
		}
		m.errText = ""
		m.notice = m.pending.Submit()
		return m, nil
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.notingProduct != nil {
		switch msg.String() {
		case "enter":
			m.pending.Add(*m.notingProduct, m.noteInput.Value())
			m.notingProduct = nil
			m.noteInput.SetValue("")
			m.noteInput.Blur()
			m.currentView = viewCreateOrder
			return m, nil
		case "esc":
			m.notingProduct = nil
			m.noteInput.SetValue("")
			m.noteInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.currentView = viewCreateOrder
		return m, nil
	case "enter":
		selected, ok := m.browseList.SelectedItem().(productItem)
		if !ok {
			return m, nil
		}
		p := selected.product
		m.notingProduct = &p
		m.noteInput.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.browseList, cmd = m.browseList.Update(msg)
	return m, cmd
}

func (m Model) updateManagerMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.logout()
	case "enter":
		selected, ok := m.managerMenu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch selected.title {
		case "Users":
			m.currentView = viewUsersMenu
			return m, nil
		case "Products":
			m.currentView = viewProductDelete
			m.resetAdminScreen()
			return m, fetchProducts(m.client, m.nextFetch())
		case "Logout":
			return m.logout()
		}
	}
	var cmd tea.Cmd
	m.managerMenu, cmd = m.managerMenu.Update(msg)
	return m, cmd
}

func (m Model) updateUsersMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.currentView = viewManagerMenu
		return m, nil
	case "enter":
		selected, ok := m.usersMenu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		switch selected.title {
		case "Create user":
			m.currentView = viewUserCreate
			m.formInputs = newUserForm()
			m.formFocus = 0
			m.formRole = 0
			m.errText = ""
			m.notice = ""
			return m, nil
		case "Delete user":
			m.currentView = viewUserDelete
			m.resetAdminScreen()
			return m, fetchUsers(m.client, m.nextFetch())
		case "Back":
			m.currentView = viewManagerMenu
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.usersMenu, cmd = m.usersMenu.Update(msg)
	return m, cmd
}

func (m Model) updateUserCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentView = viewUsersMenu
		return m, nil
	case "tab", "down":
		m.moveFormFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFormFocus(-1)
		return m, nil
	case "left", "right":
		// role picker sits after the text fields
		if m.formFocus == len(m.formInputs) {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.formRole = (m.formRole + delta + len(roleChoices)) % len(roleChoices)
		}
		return m, nil
	case "enter":
		if m.formFocus < len(m.formInputs) {
			m.moveFormFocus(1)
			return m, nil
		}
		name := m.formInputs[0].Value()
		email := m.formInputs[1].Value()
		password := m.formInputs[2].Value()
		cpf := m.formInputs[3].Value()
		if name == "" || email == "" || password == "" || cpf == "" {
			m.errText = "All fields are required"
			return m, nil
		}
		m.loading = true
		m.errText = ""
		return m, createUser(m.client, models.NewUser{
			Email:    email,
			Password: password,
			Employee: models.NewEmployee{Name: name, CPF: cpf, Role: roleChoices[m.formRole]},
		})
	}
	if m.formFocus < len(m.formInputs) {
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateEntityDelete drives both admin delete screens; they differ only in
// the entity type behind the table.
func (m Model) updateEntityDelete(msg tea.KeyMsg, users bool) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch msg.String() {
		case "y":
			m.confirming = false
			m.loading = true
			if users {
				return m, deleteUser(m.client, m.confirmingID)
			}
			return m, deleteProduct(m.client, m.confirmingID)
		case "n", "esc":
			m.confirming = false
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if users {
			m.currentView = viewUsersMenu
		} else {
			m.currentView = viewManagerMenu
		}
		return m, nil
	case "tab":
		if m.searchInput.Focused() {
			m.searchInput.Blur()
		} else {
			m.searchInput.Focus()
		}
		return m, nil
	case "enter":
		if m.searchInput.Focused() {
			// search re-fetches the page, then filters client-side
			m.searchInput.Blur()
			if users {
				return m, fetchUsers(m.client, m.nextFetch())
			}
			return m, fetchProducts(m.client, m.nextFetch())
		}
		if users {
			idx := m.usersTable.Cursor()
			if idx >= 0 && idx < len(m.visibleUsers) {
				m.confirming = true
				m.confirmingID = m.visibleUsers[idx].ID
			}
		} else {
			idx := m.productsTable.Cursor()
			if idx >= 0 && idx < len(m.visibleProducts) {
				m.confirming = true
				m.confirmingID = m.visibleProducts[idx].ID
			}
		}
		return m, nil
	case "/":
		if !m.searchInput.Focused() {
			m.searchInput.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.searchInput.Focused() {
		m.searchInput, cmd = m.searchInput.Update(msg)
		if users {
			m.applyUserFilter()
		} else {
			m.applyProductFilter()
		}
		return m, cmd
	}
	if users {
		m.usersTable, cmd = m.usersTable.Update(msg)
	} else {
		m.productsTable, cmd = m.productsTable.Update(msg)
	}
	return m, cmd
}

func (m *Model) moveFormFocus(delta int) {
	// formFocus ranges over the text fields plus the trailing role picker
	fields := len(m.formInputs) + 1
	m.formFocus = (m.formFocus + delta + fields) % fields
	for i := range m.formInputs {
		if i == m.formFocus {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m *Model) resetAdminScreen() {
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.confirming = false
	m.confirmingID = 0
	m.errText = ""
	m.notice = ""
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Clear(); err != nil {
		m.log.Error().Err(err).Msg("clearing session")
	}
	m.role = session.RoleUnknown
	m.currentView = viewLogin
	m.errText = ""
	m.notice = ""
	m.loginInputs[0].SetValue("")
	m.loginInputs[1].SetValue("")
	m.loginFocus = 0
	m.loginInputs[0].Focus()
	m.loginInputs[1].Blur()
	return m, nil
}

func clampField(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	configPath := flag.String("config", "waiter.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sessions := session.NewStore(cfg.TokenFile)
	client := api.NewClient(cfg.APIURL, sessions, logger, api.Options{
		Timeout:         cfg.RequestTimeout(),
		OrderPageSize:   cfg.PageSizes.Orders,
		ProductPageSize: cfg.PageSizes.Products,
		BrowsePageSize:  cfg.PageSizes.Browse,
		UserPageSize:    cfg.PageSizes.Users,
	})

	logger.Info().Str("api_url", cfg.APIURL).Msg("starting")

	p := tea.NewProgram(initialModel(client, sessions, logger))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}

// newLogger writes structured logs to the configured file; stdout belongs
// to the TUI.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
		return zerolog.Logger{}, nil, err
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
