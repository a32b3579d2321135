package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cloud-editor/internal/editor"
	"github.com/MKhiriev/go-cloud-editor/internal/logger"
	"github.com/MKhiriev/go-cloud-editor/internal/sandbox"
	"github.com/MKhiriev/go-cloud-editor/internal/service"
	"github.com/MKhiriev/go-cloud-editor/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusCode
	focusQuestion
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayPrompt
	overlayMove
	overlaySearch
	overlayConfirm
	overlayError
	overlayAbout
)

const (
	sidebarWidth  = 32
	defaultWidth  = 120
	defaultHeight = 36
)

// appModel is the editor screen: the sidebar on the left, the code buffer,
// question field, save bar and output console on the right. Every remote
// call runs in a tea.Cmd and reports back with a *Msg.
type appModel struct {
	ctx       context.Context
	workspace service.WorkspaceService
	session   *editor.Session
	runner    *sandbox.Runner
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	ws      service.Workspace
	sidebar sidebarModel
	focus   focusArea

	code     textarea.Model
	question textinput.Model
	output   viewport.Model
	spinner  spinner.Model

	running bool
	hasRun  bool
	lastRun models.RunResult

	overlay       overlayKind
	prompt        promptModel
	move          movePickerModel
	search        searchModel
	confirm       confirmModel
	errorOverlay  errorOverlayModel
	serverVersion string

	loading bool
	status  string
	width   int
	height  int
}

func newAppModel(
	ctx context.Context,
	workspace service.WorkspaceService,
	session *editor.Session,
	runner *sandbox.Runner,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) appModel {
	if log == nil {
		log = logger.Nop()
	}

	code := textarea.New()
	code.ShowLineNumbers = true
	code.Placeholder = "select or create a file"
	code.CharLimit = 0
	code.MaxHeight = 0
	code.Blur()

	question := textinput.New()
	question.Placeholder = "question about this file"
	question.CharLimit = 0

	m := appModel{
		ctx:       ctx,
		workspace: workspace,
		session:   session,
		runner:    runner,
		buildInfo: buildInfo,
		logger:    log,
		code:      code,
		question:  question,
		output:    viewport.New(defaultWidth-sidebarWidth, 6),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading:   true,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.cmdLoadWorkspace(true)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case workspaceLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.syncWorkspace(true)
		if msg.initial {
			m.openFirstFile()
		}
		return m, nil
	case workspaceRefreshedMsg:
		m.syncWorkspace(true)
		return m, nil

	case fileCreatedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.syncWorkspace(false)
		m.openFile(msg.file)
		m.sidebar.selectID(msg.file.ID)
		return m, tea.Batch(m.setFocus(focusCode), m.setStatus("Created "+msg.file.Name))
	case folderCreatedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.syncWorkspace(false)
		m.sidebar.selectID(msg.folder.ID)
		return m, m.setStatus("Created " + msg.folder.Name + "/")
	case renamedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		if !msg.isFolder {
			m.session.Rename(msg.id, msg.name)
		}
		m.syncWorkspace(false)
		return m, m.setStatus("Renamed to " + msg.name)
	case movedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		if !msg.isFolder {
			m.session.Move(msg.id, msg.parentID)
		}
		m.syncWorkspace(false)
		return m, m.setStatus("Moved")
	case deletedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		if !msg.isFolder && m.session.IsActive(msg.id) {
			m.closeEditor()
		}
		m.syncWorkspace(false)
		return m, m.setStatus("Deleted")

	case fileSavedMsg:
		if msg.err != nil {
			m.session.FailSave()
			m.showError(msg.err)
			return m, nil
		}
		m.session.CompleteSave(msg.update, msg.file)
		m.syncWorkspace(false)
		return m, m.setStatus("Saved")
	case runDoneMsg:
		m.running = false
		m.hasRun = true
		m.lastRun = msg.result
		m.output.SetContent(renderOutput(msg.result))
		m.output.GotoTop()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m, m.setStatus("Output copied")
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case serverVersionMsg:
		m.serverVersion = msg.version
		return m, nil

	case spinner.TickMsg:
		if !m.session.Saving() && !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

// updateInputs forwards non-key messages such as cursor blinks to the
// focused input.
func (m appModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.overlay == overlayPrompt:
		m.prompt.input, cmd = m.prompt.input.Update(msg)
	case m.overlay == overlaySearch:
		m.search.input, cmd = m.search.input.Update(msg)
	case m.focus == focusCode:
		m.code, cmd = m.code.Update(msg)
	case m.focus == focusQuestion:
		m.question, cmd = m.question.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = overlayNone
			m.errorOverlay.message = ""
		}
		return m, nil
	case overlayAbout:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.about) {
			m.overlay = overlayNone
		}
		return m, nil
	case overlayConfirm:
		return m.updateConfirm(msg)
	case overlayPrompt:
		return m.updatePrompt(msg)
	case overlayMove:
		return m.updateMove(msg)
	case overlaySearch:
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.save):
		return m.save()
	case key.Matches(msg, keys.run):
		return m.run()
	case key.Matches(msg, keys.search):
		m.search = newSearch()
		m.search.setMatches(m.workspace.Search("", searchLimit))
		m.overlay = overlaySearch
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		if !m.hasRun || m.lastRun.Output == "" {
			return m, m.setStatus("Nothing to copy")
		}
		return m, cmdCopyToClipboard(m.lastRun.Output)
	case key.Matches(msg, keys.about):
		m.overlay = overlayAbout
		return m, m.cmdServerVersion()
	case key.Matches(msg, keys.tab):
		return m, m.cycleFocus(1)
	case key.Matches(msg, keys.backtab):
		return m, m.cycleFocus(-1)
	case key.Matches(msg, keys.esc) && m.focus != focusSidebar:
		return m, m.setFocus(focusSidebar)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusCode:
		m.code, cmd = m.code.Update(msg)
		m.session.SetCode(m.code.Value())
		return m, cmd
	case focusQuestion:
		m.question, cmd = m.question.Update(msg)
		m.session.SetQuestion(m.question.Value())
		return m, cmd
	}

	return m.updateSidebar(msg)
}

func (m appModel) updateSidebar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, hasItem := m.sidebar.selected()

	switch {
	case key.Matches(msg, keys.up):
		m.sidebar.moveUp()
	case key.Matches(msg, keys.down):
		m.sidebar.moveDown()
	case key.Matches(msg, keys.enter):
		if !hasItem {
			return m, nil
		}
		if item.IsFolder() {
			m.sidebar.treeMode = false
			m.sidebar.enter(item.ID())
			m.sidebar.rebuild(m.ws)
			return m, nil
		}
		m.openFile(*item.File)
		return m, m.setFocus(focusCode)
	case key.Matches(msg, keys.parent):
		if !m.sidebar.treeMode && m.sidebar.up() {
			m.sidebar.rebuild(m.ws)
		}
	case key.Matches(msg, keys.root):
		m.sidebar.treeMode = false
		m.sidebar.goRoot()
		m.sidebar.rebuild(m.ws)
	case key.Matches(msg, keys.treeMode):
		m.sidebar.treeMode = !m.sidebar.treeMode
		m.sidebar.idx = 0
		m.sidebar.rebuild(m.ws)
		if hasItem {
			m.sidebar.selectID(item.ID())
		}
	case key.Matches(msg, keys.newFile), key.Matches(msg, keys.newFolder):
		kind := promptNewFile
		if key.Matches(msg, keys.newFolder) {
			kind = promptNewFolder
		}
		m.prompt = newPrompt(kind, "")
		m.prompt.parentID = m.createParent()
		m.overlay = overlayPrompt
		return m, textinput.Blink
	case key.Matches(msg, keys.rename):
		if !hasItem {
			return m, nil
		}
		m.prompt = newPrompt(promptRename, item.Name())
		m.prompt.targetID = item.ID()
		m.prompt.isFolder = item.IsFolder()
		m.overlay = overlayPrompt
		return m, textinput.Blink
	case key.Matches(msg, keys.move):
		if !hasItem {
			return m, nil
		}
		m.move = newMovePicker(item, m.ws.Files, m.ws.Folders)
		m.overlay = overlayMove
	case key.Matches(msg, keys.delete):
		if !hasItem {
			return m, nil
		}
		m.confirm = confirmModel{name: item.Name(), id: item.ID(), isFolder: item.IsFolder()}
		m.overlay = overlayConfirm
	}

	return m, nil
}

// createParent is the folder new items go into: the current folder, or in
// tree mode the selected folder or the parent of the selected file.
func (m appModel) createParent() *string {
	if !m.sidebar.treeMode {
		return copyID(m.sidebar.current)
	}
	item, ok := m.sidebar.selected()
	if !ok {
		return nil
	}
	if item.IsFolder() {
		id := item.ID()
		return &id
	}
	return copyID(item.File.ParentID)
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		return m, nil
	case key.Matches(msg, keys.enter):
		name := strings.TrimSpace(m.prompt.input.Value())
		if name == "" {
			return m, nil
		}
		m.overlay = overlayNone
		switch m.prompt.kind {
		case promptNewFolder:
			return m, m.cmdCreateFolder(name, m.prompt.parentID)
		case promptRename:
			return m, m.cmdRename(m.prompt.targetID, name, m.prompt.isFolder)
		default:
			return m, m.cmdCreateFile(name, m.prompt.parentID)
		}
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m appModel) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.overlay = overlayNone
	case key.Matches(msg, keys.up):
		m.move.moveUp()
	case key.Matches(msg, keys.down):
		m.move.moveDown()
	case key.Matches(msg, keys.enter):
		m.overlay = overlayNone
		target := m.move.selected()
		return m, m.cmdMove(m.move.id, target.parentID, m.move.isFolder)
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+p":
		m.overlay = overlayNone
		return m, nil
	case "up":
		m.search.moveUp()
		return m, nil
	case "down":
		m.search.moveDown()
		return m, nil
	case "enter":
		match, ok := m.search.selected()
		if !ok {
			return m, nil
		}
		m.overlay = overlayNone
		m.openFile(match.File)
		m.sidebar.reveal(match.File, m.ws)
		return m, m.setFocus(focusCode)
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	m.search.setMatches(m.workspace.Search(m.search.input.Value(), searchLimit))
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.overlay = overlayNone
		return m, m.cmdDelete(m.confirm.id, m.confirm.isFolder)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.overlay = overlayNone
		m.confirm = confirmModel{}
	}
	return m, nil
}

// save is a no-op when the buffer is clean or a save is already running.
func (m appModel) save() (tea.Model, tea.Cmd) {
	if !m.session.Dirty() {
		return m, nil
	}
	update, err := m.session.BeginSave()
	if err != nil {
		return m, nil
	}
	m.status = ""
	return m, tea.Batch(m.cmdSave(update), m.spinner.Tick)
}

func (m appModel) run() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	if _, ok := m.session.Active(); !ok {
		return m, nil
	}
	m.running = true
	return m, tea.Batch(m.cmdRun(m.session.Code()), m.spinner.Tick)
}

// syncWorkspace rebuilds the sidebar from the mirror and reconciles the open
// file with its mirror row. With followRemote a clean buffer is replaced by
// the mirror copy, but only when that copy is newer than the session's.
func (m *appModel) syncWorkspace(followRemote bool) {
	m.ws = m.workspace.Snapshot()
	m.sidebar.rebuild(m.ws)

	active, ok := m.session.Active()
	if !ok {
		return
	}
	remote, exists := m.workspace.File(active.ID)
	switch {
	case !exists:
		m.closeEditor()
		m.status = "The open file was removed"
	case followRemote && !m.session.Dirty() && !m.session.Saving() &&
		newerThan(remote, active) &&
		(remote.Code != active.Code || remote.QuestionText() != active.QuestionText()):
		m.openFile(remote)
	default:
		m.session.Rename(remote.ID, remote.Name)
		m.session.Move(remote.ID, remote.ParentID)
	}
}

// newerThan reports whether remote may replace local. Rows without a
// timestamp are taken as newer.
func newerThan(remote, local models.File) bool {
	if remote.UpdatedAt == nil || local.UpdatedAt == nil {
		return true
	}
	return remote.UpdatedAt.After(*local.UpdatedAt)
}

// openFirstFile selects the first file when nothing is open yet.
func (m *appModel) openFirstFile() {
	if _, ok := m.session.Active(); ok {
		return
	}
	for _, f := range m.ws.Files {
		if f.IsFolder {
			continue
		}
		m.openFile(f)
		m.sidebar.reveal(f, m.ws)
		return
	}
}

func (m *appModel) openFile(file models.File) {
	m.session.Open(file)
	m.code.SetValue(m.session.Code())
	m.question.SetValue(m.session.Question())
}

func (m *appModel) closeEditor() {
	m.session.Close()
	m.code.SetValue("")
	m.question.SetValue("")
	m.setFocus(focusSidebar)
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	if f != focusSidebar {
		if _, ok := m.session.Active(); !ok {
			f = focusSidebar
		}
	}

	m.focus = f
	m.code.Blur()
	m.question.Blur()

	switch f {
	case focusCode:
		return m.code.Focus()
	case focusQuestion:
		return m.question.Focus()
	}
	return nil
}

func (m *appModel) cycleFocus(step int) tea.Cmd {
	next := (int(m.focus) + step + 3) % 3
	return m.setFocus(focusArea(next))
}

func (m *appModel) showError(err error) {
	m.logger.Warn().Err(err).Str("func", "appModel.showError").Msg("action failed")
	m.overlay = overlayError
	m.errorOverlay.message = humanizeError(err)
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.status = status
	return cmdClearStatus()
}

func (m *appModel) resize(width, height int) {
	m.width = width
	m.height = height

	paneWidth := width - sidebarWidth - 8
	if paneWidth < 20 {
		paneWidth = 20
	}
	// title, question, save bar, output header, status, help and padding
	free := height - 14
	if free < 8 {
		free = 8
	}
	codeHeight := free * 2 / 3
	outputHeight := free - codeHeight

	m.code.SetWidth(paneWidth)
	m.code.SetHeight(codeHeight)
	m.question.Width = paneWidth - 4
	m.output.Width = paneWidth
	m.output.Height = outputHeight
}

func copyID(id *string) *string {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
