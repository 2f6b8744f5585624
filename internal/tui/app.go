// Package tui provides a terminal user interface for fichas
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aherranz/fichas-cli/internal/alerts"
	"github.com/aherranz/fichas-cli/internal/api"
	"github.com/aherranz/fichas-cli/internal/config"
	"github.com/aherranz/fichas-cli/internal/generator"
	"github.com/aherranz/fichas-cli/internal/poller"
	"github.com/aherranz/fichas-cli/internal/records"
	"github.com/aherranz/fichas-cli/internal/uploader"
)

// ViewState represents the current view in the TUI
type ViewState int

const (
	MainMenuView ViewState = iota
	ClientesView
	CreateClienteView
	ProyectosView
	CreateProyectoView
	UploadView
	DataView
	ActionsView
)

// Model represents the main TUI application state
type Model struct {
	// Navigation
	currentView ViewState
	width       int
	height      int

	// Backend
	client *api.Client
	cfg    *config.Config

	// Tenancy selection. The poller is tied to the key: selecting a new
	// client or project stops the old poller and starts a fresh one.
	key    api.TenancyKey
	poller *poller.Poller

	// Transient notifications and availability readings arrive on this
	// channel from the alert store and poller callbacks; listenEvents
	// re-arms after every delivery.
	events chan tea.Msg
	alerts *alerts.Store

	// Data
	clientes     []api.Cliente
	proyectos    []api.Proyecto
	alertList    []alerts.Alert
	availability api.Availability

	// State
	loading bool
	error   string

	// Views
	mainMenu           *MainMenuModel
	clientesView       *ClientesModel
	createClienteView  *CreateClienteModel
	proyectosView      *ProyectosModel
	createProyectoView *CreateProyectoModel
	uploadView         *UploadModel
	dataView           *DataModel
	actionsView        *ActionsModel
}

// NewModel creates a new TUI model
func NewModel(client *api.Client, cfg *config.Config) *Model {
	apiURL := ""
	if client != nil {
		apiURL = client.BaseURL()
	}
	m := &Model{
		currentView:        MainMenuView,
		client:             client,
		cfg:                cfg,
		events:             make(chan tea.Msg, 32),
		mainMenu:           NewMainMenuModel(apiURL),
		clientesView:       NewClientesModel(),
		createClienteView:  NewCreateClienteModel(),
		proyectosView:      NewProyectosModel(),
		createProyectoView: NewCreateProyectoModel(),
		uploadView:         NewUploadModel(),
		dataView:           NewDataModel(),
		actionsView:        NewActionsModel(),
	}
	m.alerts = alerts.NewStore(alerts.WithOnChange(func([]alerts.Alert) {
		m.signal(AlertsChangedMsg{})
	}))
	return m
}

// signal delivers a message to the event channel without blocking. A full
// buffer already carries a pending wake-up, so dropping is safe for the
// coalescing signals sent here.
func (m *Model) signal(msg tea.Msg) {
	select {
	case m.events <- msg:
	default:
	}
}

// Init returns initial commands for the application
func (m Model) Init() tea.Cmd {
	return m.listenEvents()
}

// listenEvents waits for the next out-of-band event (alert change,
// availability reading, transfer progress).
func (m Model) listenEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.shutdown()
			return m, tea.Quit

		case "q":
			if m.currentView == MainMenuView {
				m.shutdown()
				return m, tea.Quit
			}
			// Leave typing views alone; q is a regular character there
			if m.currentView != CreateClienteView &&
				m.currentView != CreateProyectoView &&
				m.currentView != UploadView &&
				m.currentView != DataView &&
				m.currentView != ActionsView {
				m.stopPoller()
				m.key = api.TenancyKey{}
				m.currentView = MainMenuView
				m.error = ""
				return m, nil
			}
		}

	case AlertsChangedMsg:
		m.alertList = m.alerts.Alerts()
		cmds = append(cmds, m.listenEvents())

	case AvailabilityMsg:
		if m.poller != nil {
			m.availability = m.poller.Last()
			m.actionsView.SetAvailability(m.availability)
		}
		cmds = append(cmds, m.listenEvents())

	case TransferProgressMsg:
		m.uploadView.SetProgress(int(msg))
		m.actionsView.SetProgress(int(msg))
		cmds = append(cmds, m.listenEvents())

	case ClientesLoadedMsg:
		m.clientes = []api.Cliente(msg)
		m.loading = false
		m.clientesView.SetClientes(m.clientes)

	case ProyectosLoadedMsg:
		m.proyectos = []api.Proyecto(msg)
		m.loading = false
		m.proyectosView.SetProyectos(m.key.ClienteNIF, m.proyectos)
		// A fresh client has nothing to select yet; offer creation directly
		if len(m.proyectos) == 0 && m.currentView == ProyectosView {
			m.currentView = CreateProyectoView
			m.createProyectoView = NewCreateProyectoModel()
		}

	case ErrorMsg:
		m.loading = false
		m.error = string(msg)

	case NavigateMsg:
		m.currentView = ViewState(msg)
		m.error = ""
		switch m.currentView {
		case MainMenuView, ClientesView:
			// Leaving the tenancy context abandons its poller
			m.stopPoller()
			m.key = api.TenancyKey{}
		}
		switch m.currentView {
		case ClientesView:
			m.loading = true
			cmds = append(cmds, m.loadClientes())
		case CreateClienteView:
			m.createClienteView = NewCreateClienteModel() // Reset form
		case CreateProyectoView:
			m.createProyectoView = NewCreateProyectoModel() // Reset form
		case UploadView:
			m.uploadView = NewUploadModel() // Reset form
		}

	case SelectClienteMsg:
		m.selectTenancy(api.TenancyKey{ClienteNIF: msg.Cliente.NIF})
		m.currentView = ProyectosView
		m.loading = true
		m.error = ""
		cmds = append(cmds, m.loadProyectos())

	case SelectProyectoMsg:
		m.selectTenancy(api.TenancyKey{ClienteNIF: m.key.ClienteNIF, Proyecto: msg.Proyecto})
		m.actionsView.SetKey(m.key)
		m.currentView = ActionsView
		m.error = ""
		cmds = append(cmds, m.loadMetadata())

	case MetadataLoadedMsg:
		m.actionsView.SetMetadata(msg.Metadata)

	case CreateClienteMsg:
		m.loading = true
		cmds = append(cmds, m.createCliente(msg.NIF, msg.Nombre))

	case ClienteCreatedMsg:
		m.loading = false
		m.clientes = msg.Clientes
		m.clientesView.SetClientes(m.clientes)
		m.currentView = ClientesView
		m.error = ""

	case CreateProyectoMsg:
		m.loading = true
		cmds = append(cmds, m.createProyecto(msg.Acronimo))

	case ProyectoCreatedMsg:
		m.loading = false
		m.proyectos = msg.Proyectos
		m.proyectosView.SetProyectos(m.key.ClienteNIF, m.proyectos)
		m.currentView = ProyectosView
		m.error = ""

	case StartUploadMsg:
		cmds = append(cmds, m.runUpload(msg))

	case UploadDoneMsg:
		m.uploadView.SetDone(msg.Metadata, msg.Err)
		if msg.Metadata != nil {
			m.actionsView.SetMetadata(*msg.Metadata)
		}

	case OpenDataMsg:
		m.loading = true
		cmds = append(cmds, m.loadData(msg.Type))

	case DataLoadedMsg:
		m.loading = false
		m.dataView.Open(msg.Type, msg.Data)
		m.currentView = DataView
		m.error = ""

	case SaveDataMsg:
		cmds = append(cmds, m.saveData(msg.Type, msg.Data))

	case DataSavedMsg:
		m.dataView.CommitSaved()
		if m.poller != nil {
			m.poller.Kick()
		}

	case RunValidateMsg:
		cmds = append(cmds, m.runValidate())

	case ValidationDoneMsg:
		m.actionsView.SetValidation(msg.Result)

	case RunGenerateMsg:
		cmds = append(cmds, m.runGenerate(msg))

	case GenerateDoneMsg:
		m.actionsView.SetFiles(msg.Files)
		if m.poller != nil {
			m.poller.Kick()
		}

	case RunDownloadMsg:
		cmds = append(cmds, m.runDownload(msg.Name))

	case DownloadDoneMsg:
		// Outcome text is surfaced through the alert store; only the
		// in-progress state needs clearing here.
		m.actionsView.SetDownloadDone(msg.Err)
	}

	// Update current view
	switch m.currentView {
	case MainMenuView:
		var mainMenuModel tea.Model
		mainMenuModel, cmd = m.mainMenu.Update(msg)
		if mm, ok := mainMenuModel.(MainMenuModel); ok {
			m.mainMenu = &mm
		}
		cmds = append(cmds, cmd)

	case ClientesView:
		var clientesModel tea.Model
		clientesModel, cmd = m.clientesView.Update(msg)
		if cm, ok := clientesModel.(ClientesModel); ok {
			m.clientesView = &cm
		}
		cmds = append(cmds, cmd)

	case CreateClienteView:
		var createClienteModel tea.Model
		createClienteModel, cmd = m.createClienteView.Update(msg)
		if ccm, ok := createClienteModel.(CreateClienteModel); ok {
			m.createClienteView = &ccm
		}
		cmds = append(cmds, cmd)

	case ProyectosView:
		var proyectosModel tea.Model
		proyectosModel, cmd = m.proyectosView.Update(msg)
		if pm, ok := proyectosModel.(ProyectosModel); ok {
			m.proyectosView = &pm
		}
		cmds = append(cmds, cmd)

	case CreateProyectoView:
		var createProyectoModel tea.Model
		createProyectoModel, cmd = m.createProyectoView.Update(msg)
		if cpm, ok := createProyectoModel.(CreateProyectoModel); ok {
			m.createProyectoView = &cpm
		}
		cmds = append(cmds, cmd)

	case UploadView:
		var uploadModel tea.Model
		uploadModel, cmd = m.uploadView.Update(msg)
		if um, ok := uploadModel.(UploadModel); ok {
			m.uploadView = &um
		}
		cmds = append(cmds, cmd)

	case DataView:
		var dataModel tea.Model
		dataModel, cmd = m.dataView.Update(msg)
		if dm, ok := dataModel.(DataModel); ok {
			m.dataView = &dm
		}
		cmds = append(cmds, cmd)

	case ActionsView:
		var actionsModel tea.Model
		actionsModel, cmd = m.actionsView.Update(msg)
		if am, ok := actionsModel.(ActionsModel); ok {
			m.actionsView = &am
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// stopPoller stops the availability poller of the current tenancy key,
// if any. After it returns no stale notification can arrive.
func (m *Model) stopPoller() {
	if m.poller != nil {
		m.poller.Stop()
		m.poller = nil
	}
}

// selectTenancy switches the active client/project key, restarting the
// availability poller against the new key.
func (m *Model) selectTenancy(key api.TenancyKey) {
	m.stopPoller()
	m.key = key
	m.availability = api.Availability{}
	m.actionsView.SetAvailability(m.availability)

	p := poller.New(
		func(ctx context.Context) (api.Availability, error) {
			av, err := m.client.CheckAvailableFichas(ctx, key)
			if err != nil {
				return api.Availability{}, err
			}
			return *av, nil
		},
		func(api.Availability) { m.signal(AvailabilityMsg{}) },
	)
	m.poller = p
	p.Start()
}

// shutdown stops background work before the program exits.
func (m *Model) shutdown() {
	m.stopPoller()
	m.alerts.Close()
}

// View renders the current view
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	// Header
	header := m.headerView()

	// Content based on current view
	switch m.currentView {
	case MainMenuView:
		content = m.mainMenu.View()
	case ClientesView:
		if m.loading {
			content = "Loading clients..."
		} else {
			content = m.clientesView.View()
		}
	case CreateClienteView:
		if m.loading {
			content = "Creating client..."
		} else {
			content = m.createClienteView.View()
		}
	case ProyectosView:
		if m.loading {
			content = "Loading projects..."
		} else {
			content = m.proyectosView.View()
		}
	case CreateProyectoView:
		if m.loading {
			content = "Creating project..."
		} else {
			content = m.createProyectoView.View()
		}
	case UploadView:
		content = m.uploadView.View()
	case DataView:
		if m.loading {
			content = "Loading records..."
		} else {
			content = m.dataView.View()
		}
	case ActionsView:
		content = m.actionsView.View()
	default:
		content = "View not implemented"
	}

	// Error display
	if m.error != "" {
		content += "\n" + errorStyle.Render("Error: "+m.error)
	}

	// Alerts display, newest first
	for _, a := range m.alertList {
		content += "\n" + renderAlert(a)
	}

	// Footer
	footer := m.footerView()

	return header + "\n" + content + "\n" + footer
}

// headerView renders the application header
func (m Model) headerView() string {
	title := titleStyle.Render("fichas TUI")

	var subtitle string
	switch m.currentView {
	case MainMenuView:
		subtitle = "Main Menu"
	case ClientesView:
		subtitle = "Clients"
	case CreateClienteView:
		subtitle = "Create Client"
	case ProyectosView:
		subtitle = "Projects"
	case CreateProyectoView:
		subtitle = "Create Project"
	case UploadView:
		subtitle = "Upload"
	case DataView:
		subtitle = "Records"
	case ActionsView:
		subtitle = "Fichas"
	}
	if m.key.ClienteNIF != "" {
		subtitle += " · " + m.key.ClienteNIF
		if m.key.Proyecto != "" {
			subtitle += " / " + m.key.Proyecto
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitleStyle.Render(subtitle))
}

// footerView renders the application footer with help
func (m Model) footerView() string {
	help := ""
	switch m.currentView {
	case MainMenuView:
		help = "enter: continue • q: quit"
	case ClientesView, ProyectosView:
		help = "↑/↓: navigate • enter: select • n: new • esc: back • q: quit"
	case CreateClienteView, CreateProyectoView:
		help = "tab: next field • enter: submit • esc: cancel"
	case UploadView:
		help = "tab: switch mode • enter: upload • esc: back"
	case DataView:
		help = m.dataView.Help()
	case ActionsView:
		help = "u: upload • p/c/f: edit records • o: overrides • v: validate • g/1/2: generate • d: download • esc: back"
	}

	return helpStyle.Render(help)
}

func renderAlert(a alerts.Alert) string {
	switch a.Severity {
	case alerts.Success:
		return alertSuccessStyle.Render("✓ " + a.Message)
	case alerts.Warning:
		return alertWarningStyle.Render("⚠ " + a.Message)
	case alerts.Error:
		return alertErrorStyle.Render("✗ " + a.Message)
	default:
		return alertInfoStyle.Render("• " + a.Message)
	}
}

// loadClientes creates a command to load the client list from the backend
func (m Model) loadClientes() tea.Cmd {
	return func() tea.Msg {
		clientes, err := m.client.ListClientes(context.Background())
		if err != nil {
			return ErrorMsg(fmt.Sprintf("Failed to load clients: %v", err))
		}
		return ClientesLoadedMsg(clientes)
	}
}

// loadProyectos creates a command to load the selected client's projects
func (m Model) loadProyectos() tea.Cmd {
	nif := m.key.ClienteNIF
	return func() tea.Msg {
		proyectos, err := m.client.ListProyectos(context.Background(), nif)
		if err != nil {
			return ErrorMsg(fmt.Sprintf("Failed to load projects: %v", err))
		}
		return ProyectosLoadedMsg(proyectos)
	}
}

// createCliente creates a command to register a client and refresh the list
func (m Model) createCliente(nif, nombre string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.CreateCliente(context.Background(), nif, nombre); err != nil {
			return ErrorMsg(fmt.Sprintf("Failed to create client: %v", err))
		}
		clientes, err := m.client.ListClientes(context.Background())
		if err != nil {
			return ErrorMsg(fmt.Sprintf("Client created but failed to refresh list: %v", err))
		}
		return ClienteCreatedMsg{Clientes: clientes}
	}
}

// createProyecto creates a command to register a project under the
// selected client and refresh the list
func (m Model) createProyecto(acronimo string) tea.Cmd {
	nif := m.key.ClienteNIF
	return func() tea.Msg {
		if err := m.client.CreateProyecto(context.Background(), nif, acronimo); err != nil {
			return ErrorMsg(fmt.Sprintf("Failed to create project: %v", err))
		}
		proyectos, err := m.client.ListProyectos(context.Background(), nif)
		if err != nil {
			return ErrorMsg(fmt.Sprintf("Project created but failed to refresh list: %v", err))
		}
		return ProyectoCreatedMsg{Proyectos: proyectos}
	}
}

// runUpload creates a command to upload the Anexo or a CV batch
func (m Model) runUpload(msg StartUploadMsg) tea.Cmd {
	key := m.key
	return func() tea.Msg {
		var md *api.AnexoMetadata
		orch := uploader.New(m.client, m.alerts, uploader.Events{
			OnAnexoMetadata: func(got api.AnexoMetadata) { md = &got },
		}, nil)
		progress := func(pct int) { m.signal(TransferProgressMsg(pct)) }

		var err error
		if msg.Anexo {
			err = orch.UploadAnexo(context.Background(), key, msg.Paths[0], progress)
		} else {
			err = orch.UploadCVs(context.Background(), key, msg.Paths, progress)
		}
		if err != nil {
			// Already surfaced as an alert; keep the form usable.
			return UploadDoneMsg{Err: err}
		}
		return UploadDoneMsg{Metadata: md}
	}
}

// loadMetadata creates a command to fetch the Anexo metadata used to
// prefill the generation override form
func (m Model) loadMetadata() tea.Cmd {
	nif := m.key.ClienteNIF
	return func() tea.Msg {
		md, err := m.client.GetMetadata(context.Background(), nif)
		if err != nil || md == nil {
			// Nothing extracted yet; the form simply starts empty.
			return MetadataLoadedMsg{}
		}
		return MetadataLoadedMsg{Metadata: *md}
	}
}

// loadData creates a command to fetch one record collection
func (m Model) loadData(typ records.Type) tea.Cmd {
	key := m.key
	return func() tea.Msg {
		data, err := m.client.GetRecords(context.Background(), typ, key)
		if err != nil {
			var apiErr *api.APIError
			if errors.As(err, &apiErr) {
				// Nothing stored yet; start from an empty grid.
				return DataLoadedMsg{Type: typ, Data: records.Collection{}}
			}
			return ErrorMsg(fmt.Sprintf("Failed to load %s: %v", typ, err))
		}
		return DataLoadedMsg{Type: typ, Data: data}
	}
}

// saveData creates a command to replace one record collection
func (m Model) saveData(typ records.Type, data records.Collection) tea.Cmd {
	key := m.key
	return func() tea.Msg {
		if err := m.client.UpdateRecords(context.Background(), typ, key, data); err != nil {
			m.alerts.Pushf(alerts.Error, "Error al guardar %s: %s", typ, api.ErrorDetail(err))
			return ErrorMsg(fmt.Sprintf("Failed to save %s: %v", typ, err))
		}
		m.alerts.Pushf(alerts.Success, "%s guardado (%d registros)", typ.Label(), len(data))
		return DataSavedMsg{}
	}
}

// runValidate creates a command to run server-side validation
func (m Model) runValidate() tea.Cmd {
	key := m.key
	return func() tea.Msg {
		ctrl := generator.New(m.client, m.alerts)
		res, err := ctrl.Validate(context.Background(), key)
		if err != nil {
			return ValidationDoneMsg{}
		}
		return ValidationDoneMsg{Result: res}
	}
}

// runGenerate creates a command to generate fichas
func (m Model) runGenerate(msg RunGenerateMsg) tea.Cmd {
	key := m.key
	av := m.availability
	return func() tea.Msg {
		ctrl := generator.New(m.client, m.alerts)
		switch msg.Tipo {
		case "2.1":
			file, err := ctrl.Generate21(context.Background(), key, msg.Overrides, av)
			if err != nil {
				return GenerateDoneMsg{}
			}
			return GenerateDoneMsg{Files: []string{file}}
		case "2.2":
			file, err := ctrl.Generate22(context.Background(), key, msg.Overrides, av)
			if err != nil {
				return GenerateDoneMsg{}
			}
			return GenerateDoneMsg{Files: []string{file}}
		default:
			files, err := ctrl.GenerateAll(context.Background(), key, msg.Overrides)
			if err != nil {
				return GenerateDoneMsg{}
			}
			return GenerateDoneMsg{Files: files}
		}
	}
}

// runDownload creates a command to download the batch zip or one ficha
func (m Model) runDownload(name string) tea.Cmd {
	key := m.key
	dir := "."
	if m.cfg != nil && m.cfg.DownloadDir != "" {
		dir = m.cfg.DownloadDir
	}
	return func() tea.Msg {
		ctrl := generator.New(m.client, m.alerts)
		progress := func(pct int) { m.signal(TransferProgressMsg(pct)) }

		var err error
		if name == "" {
			_, err = ctrl.DownloadAll(context.Background(), key, dir, progress)
		} else {
			_, err = ctrl.DownloadOne(context.Background(), key, name, dir, progress)
		}
		return DownloadDoneMsg{Err: err}
	}
}

// Custom messages
type ClientesLoadedMsg []api.Cliente
type ProyectosLoadedMsg []api.Proyecto
type ErrorMsg string
type NavigateMsg ViewState

// AlertsChangedMsg signals that the alert store's contents changed
type AlertsChangedMsg struct{}

// AvailabilityMsg signals that a fresh availability reading exists
type AvailabilityMsg struct{}

// TransferProgressMsg carries upload/download progress in percent
type TransferProgressMsg int

// SelectClienteMsg represents a client selection
type SelectClienteMsg struct {
	Cliente api.Cliente
}

// SelectProyectoMsg represents a project selection; an empty acronym
// addresses the client-level bucket
type SelectProyectoMsg struct {
	Proyecto string
}

// CreateClienteMsg represents a request to register a client
type CreateClienteMsg struct {
	NIF    string
	Nombre string
}

// ClienteCreatedMsg represents a successful client registration
type ClienteCreatedMsg struct {
	Clientes []api.Cliente
}

// CreateProyectoMsg represents a request to register a project
type CreateProyectoMsg struct {
	Acronimo string
}

// ProyectoCreatedMsg represents a successful project registration
type ProyectoCreatedMsg struct {
	Proyectos []api.Proyecto
}

// StartUploadMsg represents a request to upload the Anexo or CV PDFs
type StartUploadMsg struct {
	Anexo bool
	Paths []string
}

// UploadDoneMsg represents a finished upload attempt
type UploadDoneMsg struct {
	Metadata *api.AnexoMetadata
	Err      error
}

// MetadataLoadedMsg carries the stored Anexo metadata of the selected
// client
type MetadataLoadedMsg struct {
	Metadata api.AnexoMetadata
}

// OpenDataMsg represents a request to open one collection in the grid
type OpenDataMsg struct {
	Type records.Type
}

// DataLoadedMsg carries a loaded collection into the grid
type DataLoadedMsg struct {
	Type records.Type
	Data records.Collection
}

// SaveDataMsg represents a request to replace one collection
type SaveDataMsg struct {
	Type records.Type
	Data records.Collection
}

// DataSavedMsg represents a successful collection save
type DataSavedMsg struct{}

// RunValidateMsg represents a request to validate the collections
type RunValidateMsg struct{}

// ValidationDoneMsg carries the validation outcome
type ValidationDoneMsg struct {
	Result *api.ValidationResult
}

// RunGenerateMsg represents a request to generate fichas
type RunGenerateMsg struct {
	Tipo      string // "", "2.1" or "2.2"
	Overrides api.GenerateOverrides
}

// GenerateDoneMsg carries the generated file names
type GenerateDoneMsg struct {
	Files []string
}

// RunDownloadMsg represents a request to download generated fichas
type RunDownloadMsg struct {
	Name string // empty for the whole batch
}

// DownloadDoneMsg represents a finished download attempt
type DownloadDoneMsg struct {
	Err error
}

// Styles
var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	alertWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	alertErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	alertInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)
