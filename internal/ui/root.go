package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cache-browser/internal/browser"
	"github.com/ytget/cache-browser/internal/config"
	"github.com/ytget/cache-browser/internal/model"
	"github.com/ytget/cache-browser/internal/preview"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	browser      *browser.Browser
	settings     *config.Settings
	localization *Localization

	// Directory row
	selectDirBtn *widget.Button
	rescanBtn    *widget.Button
	dirLabel     *widget.Label

	// Catalog list. entries is the UI copy of the browser catalog.
	entryList *widget.List
	entries   []model.CatalogEntry
	syncing   bool

	// Preview pane
	infoLabel    *widget.Label
	imageView    *canvas.Image
	textView     *widget.Label
	textScroll   *container.Scroll
	messageLabel *widget.Label
	audioTitle   *widget.Label
	audioPanel   *fyne.Container

	// Actions
	playBtn      *widget.Button
	volumeLabel  *widget.Label
	volumeSlider *widget.Slider
	revealBtn    *widget.Button
	copyBtn      *widget.Button

	scanCancel context.CancelFunc

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
	notificationSeq       atomic.Uint64
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, b *browser.Browser, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		browser:      b,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Browser callbacks arrive on worker goroutines
	b.SetPreviewCallback(func(state model.PreviewState) {
		fyne.Do(func() { ui.renderPreview(state) })
	})
	b.SetPlaybackCallback(func(session model.PlaybackSession) {
		fyne.Do(func() { ui.renderPlayback(session.Status) })
	})
	b.SetCatalogCallback(func(catalog *model.Catalog) {
		fyne.Do(func() {
			ui.applyCatalog(catalog)
			ui.showNotification(ui.localization.GetText(KeyCatalogUpdated), false)
		})
	})
	b.SetWatchErrorCallback(func(err error) {
		log.Printf("Background rescan failed: %v", err)
		ui.showNotification(err.Error(), false)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	text := ui.localization.GetText

	// Directory row
	ui.selectDirBtn = widget.NewButton(IconFolder+" "+text(KeySelectDirectory), ui.onSelectDirectory)
	ui.selectDirBtn.Importance = widget.HighImportance
	ui.rescanBtn = widget.NewButton(IconRefresh, ui.onRescan)
	ui.rescanBtn.Importance = widget.LowImportance
	ui.rescanBtn.Disable()
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.dirLabel = widget.NewLabel(text(KeyNoDirectory))
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(ui.selectDirBtn, ui.rescanBtn),
		settingsBtn,
		ui.dirLabel,
	)

	// Notification panel under the directory row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	// Catalog list shows decoded identities
	ui.entryList = widget.NewList(
		func() int {
			return len(ui.entries)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		ui.updateEntryItem,
	)
	ui.entryList.OnSelected = ui.onEntrySelected

	listPanel := container.NewBorder(nil, nil, nil, nil, ui.entryList)

	// Preview surfaces, one visible at a time
	ui.infoLabel = widget.NewLabel("")
	ui.infoLabel.Wrapping = fyne.TextWrapBreak

	ui.imageView = canvas.NewImageFromImage(nil)
	ui.imageView.FillMode = canvas.ImageFillContain
	ui.imageView.SetMinSize(fyne.NewSize(PreviewMinWidth, PreviewMinHeight))
	ui.imageView.Hide()

	ui.textView = widget.NewLabel("")
	ui.textView.TextStyle = fyne.TextStyle{Monospace: true}
	ui.textScroll = container.NewScroll(ui.textView)
	ui.textScroll.Hide()

	ui.messageLabel = widget.NewLabel("")
	ui.messageLabel.Alignment = fyne.TextAlignCenter
	ui.messageLabel.Wrapping = fyne.TextWrapWord
	ui.messageLabel.Hide()

	ui.audioTitle = widget.NewLabel("")
	ui.audioTitle.Alignment = fyne.TextAlignCenter
	ui.audioTitle.Wrapping = fyne.TextWrapWord
	ui.audioPanel = container.NewCenter(ui.audioTitle)
	ui.audioPanel.Hide()

	previewStack := container.NewStack(ui.imageView, ui.textScroll, ui.messageLabel, ui.audioPanel)

	// Actions row
	ui.playBtn = widget.NewButton(text(KeyPlay), ui.onTogglePlay)
	ui.playBtn.Disable()

	ui.volumeLabel = widget.NewLabel(text(KeyVolume))
	ui.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.SetValue(ui.browser.Volume() * VolumeSliderMax)
	ui.volumeSlider.OnChanged = ui.onVolumeChanged
	volumeBox := container.NewGridWrap(fyne.NewSize(VolumeSliderWidth, ui.volumeSlider.MinSize().Height), ui.volumeSlider)

	ui.revealBtn = widget.NewButton(text(KeyReveal), ui.onRevealFile)
	ui.revealBtn.Disable()
	ui.copyBtn = widget.NewButton(text(KeyCopy), ui.onCopyFile)
	ui.copyBtn.Disable()

	actions := container.NewHBox(ui.playBtn, ui.volumeLabel, volumeBox, widget.NewSeparator(), ui.revealBtn, ui.copyBtn)

	previewPanel := container.NewBorder(ui.infoLabel, actions, nil, nil, previewStack)

	split := container.NewHSplit(listPanel, previewPanel)
	split.Offset = SplitOffset

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		split,       // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	openItem := fyne.NewMenuItem(text(KeySelectDirectory), ui.onSelectDirectory)
	rescanItem := fyne.NewMenuItem(text(KeyRescan), ui.onRescan)
	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(text(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile), openItem, rescanItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText

	ui.window.SetTitle(text(KeyAppTitle))
	ui.selectDirBtn.SetText(IconFolder + " " + text(KeySelectDirectory))
	ui.volumeLabel.SetText(text(KeyVolume))
	ui.revealBtn.SetText(text(KeyReveal))
	ui.copyBtn.SetText(text(KeyCopy))
	ui.renderPlayback(ui.browser.Status())
	ui.renderDirectory(ui.browser.Catalog())
	ui.renderPreview(ui.browser.Preview())
}

// OpenLastDirectory reopens the directory of the previous session, if any
func (ui *RootUI) OpenLastDirectory() {
	dir := ui.browser.LastDirectory()
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Printf("Last directory %s is not available", dir)
		return
	}
	ui.openDirectory(dir)
}

// onSelectDirectory shows the folder picker, starting at the last directory
func (ui *RootUI) onSelectDirectory() {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.openDirectory(uri.Path())
	}, ui.window)

	if dir := ui.browser.LastDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

// openDirectory scans dir in the background and shows the resulting catalog
func (ui *RootUI) openDirectory(dir string) {
	ctx := ui.beginScan()
	ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyScanning), dir), true)

	go func() {
		catalog, err := ui.browser.Open(ctx, dir)
		fyne.Do(func() {
			ui.finishScan(ctx, catalog, err)
		})
	}()
}

// onRescan re-reads the current directory
func (ui *RootUI) onRescan() {
	catalog := ui.browser.Catalog()
	if catalog == nil {
		return
	}

	ctx := ui.beginScan()
	ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyScanning), catalog.Dir), true)

	go func() {
		catalog, err := ui.browser.Rescan(ctx)
		fyne.Do(func() {
			ui.finishScan(ctx, catalog, err)
		})
	}()
}

// beginScan cancels a scan still in flight and returns the context for the next one
func (ui *RootUI) beginScan() context.Context {
	if ui.scanCancel != nil {
		ui.scanCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.scanCancel = cancel
	return ctx
}

func (ui *RootUI) finishScan(ctx context.Context, catalog *model.Catalog, err error) {
	// A newer scan replaced this one
	if ctx.Err() != nil {
		return
	}
	ui.hideNotification()

	if err != nil {
		if errors.Is(err, browser.ErrClosed) {
			return
		}
		log.Printf("Error loading files: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	ui.applyCatalog(catalog)
	if catalog.Len() == 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyInformation), ui.localization.GetText(KeyNoFilesFound), ui.window)
	}
}

// applyCatalog replaces the list contents and restores the browser selection
func (ui *RootUI) applyCatalog(catalog *model.Catalog) {
	if catalog == nil {
		ui.entries = nil
	} else {
		ui.entries = catalog.Entries
	}
	ui.rescanBtn.Enable()
	ui.renderDirectory(catalog)

	ui.syncing = true
	defer func() { ui.syncing = false }()

	ui.entryList.UnselectAll()
	ui.entryList.Refresh()

	index := ui.browser.SelectedIndex()
	if index >= 0 && index < len(ui.entries) {
		ui.entryList.Select(index)
		ui.renderInfo(ui.entries[index])
	} else {
		ui.infoLabel.SetText("")
	}
	ui.renderPreview(ui.browser.Preview())
}

func (ui *RootUI) updateEntryItem(id widget.ListItemID, item fyne.CanvasObject) {
	label, ok := item.(*widget.Label)
	if !ok || id < 0 || id >= len(ui.entries) {
		return
	}
	label.SetText(ui.entries[id].DecodedIdentity)
}

// onEntrySelected previews the chosen entry
func (ui *RootUI) onEntrySelected(id widget.ListItemID) {
	if ui.syncing || id < 0 || id >= len(ui.entries) {
		return
	}

	entry := ui.entries[id]
	ui.renderInfo(entry)

	// The watcher may have swapped the browser catalog since the list was drawn
	if _, err := ui.browser.SelectPath(entry.Path); err != nil {
		log.Printf("Error loading file %s: %v", entry.Path, err)
		ui.infoLabel.SetText(DashPlaceholder + " " + filepath.Base(entry.Path))
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) renderDirectory(catalog *model.Catalog) {
	if catalog == nil {
		ui.dirLabel.SetText(ui.localization.GetText(KeyNoDirectory))
		return
	}
	ui.dirLabel.SetText(catalog.Dir + MiddleDotSeparator + fmt.Sprintf(ui.localization.GetText(KeyFilesFound), catalog.Len()))
}

func (ui *RootUI) renderInfo(entry model.CatalogEntry) {
	text := ui.localization.GetText
	ui.infoLabel.SetText(fmt.Sprintf("%s: %s\n%s: %s",
		text(KeyOriginal), filepath.Base(entry.Path),
		text(KeyDecoded), entry.DecodedIdentity,
	))
}

// renderPreview shows the surface matching the preview kind and hides the rest
func (ui *RootUI) renderPreview(state model.PreviewState) {
	ui.imageView.Hide()
	ui.textScroll.Hide()
	ui.messageLabel.Hide()
	ui.audioPanel.Hide()

	switch state.Kind {
	case model.PreviewImage:
		ui.imageView.Image = state.Image
		ui.imageView.Refresh()
		ui.imageView.Show()
	case model.PreviewText:
		ui.textView.SetText(state.Text)
		ui.textScroll.ScrollToTop()
		ui.textScroll.Show()
	case model.PreviewAudioReady:
		ui.audioTitle.SetText(ui.audioCaption(state.Audio))
		ui.audioPanel.Show()
	case model.PreviewUnsupported:
		ui.messageLabel.SetText(ui.previewMessage(state.Message))
		ui.messageLabel.Show()
	default:
		ui.imageView.Image = nil
		ui.textView.SetText("")
	}

	if state.AudioControlsEnabled() {
		ui.playBtn.Enable()
	} else {
		ui.playBtn.Disable()
	}

	if _, ok := ui.browser.SelectedEntry(); ok && state.Kind != model.PreviewNone {
		ui.revealBtn.Enable()
		ui.copyBtn.Enable()
	} else {
		ui.revealBtn.Disable()
		ui.copyBtn.Disable()
	}
}

func (ui *RootUI) audioCaption(target model.AudioTarget) string {
	if target.Tags.IsEmpty() {
		return IconMusic + " " + ui.localization.GetText(KeyUnknownTitle)
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{target.Tags.Title, target.Tags.Artist, target.Tags.Album} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return IconMusic + " " + strings.Join(parts, MiddleDotSeparator)
}

// previewMessage localizes the fixed unsupported message
func (ui *RootUI) previewMessage(message string) string {
	if message == preview.NoPreviewMessage {
		return ui.localization.GetText(KeyNoPreview)
	}
	return message
}

func (ui *RootUI) renderPlayback(status model.PlaybackStatus) {
	if status.IsPlaying() {
		ui.playBtn.SetText(ui.localization.GetText(KeyStop))
	} else {
		ui.playBtn.SetText(ui.localization.GetText(KeyPlay))
	}
}

// onTogglePlay starts or stops the selected audio
func (ui *RootUI) onTogglePlay() {
	if err := ui.browser.TogglePlay(); err != nil {
		log.Printf("Playback error: %v", err)
		dialog.ShowError(err, ui.window)
	}
}

func (ui *RootUI) onVolumeChanged(value float64) {
	ui.browser.SetVolume(value / VolumeSliderMax)
}

// onRevealFile handles revealing the selected file in the system file manager
func (ui *RootUI) onRevealFile() {
	entry, ok := ui.browser.SelectedEntry()
	if !ok {
		return
	}

	if err := ui.browser.Reveal(entry); err != nil {
		log.Printf("Error revealing file %s: %v", entry.Path, err)
		dialog.ShowError(err, ui.window)
		return
	}

	log.Printf("File revealed successfully: %s", entry.Path)
}

// onCopyFile asks for a destination folder and copies the selected file there
// under its suggested name
func (ui *RootUI) onCopyFile() {
	entry, ok := ui.browser.SelectedEntry()
	if !ok {
		dialog.ShowError(errors.New(ui.localization.GetText(KeySelectFileFirst)), ui.window)
		return
	}

	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.confirmCopy(entry, filepath.Join(uri.Path(), ui.browser.SuggestedFileName(entry)))
	}, ui.window)

	if dir := ui.settings.GetCopyDirectory(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

// confirmCopy asks before replacing an existing file at dst
func (ui *RootUI) confirmCopy(entry model.CatalogEntry, dst string) {
	if _, err := os.Stat(dst); err != nil {
		go ui.copyTo(entry, dst)
		return
	}

	text := ui.localization.GetText
	dialog.ShowConfirm(text(KeyReplaceTitle), fmt.Sprintf(text(KeyReplaceMessage), filepath.Base(dst)), func(replace bool) {
		if replace {
			go ui.copyTo(entry, dst)
		}
	}, ui.window)
}

// copyTo copies entry to dst. A failed copy leaves both files as they were.
func (ui *RootUI) copyTo(entry model.CatalogEntry, dst string) {
	err := ui.browser.CopyOut(entry, dst)

	fyne.Do(func() {
		if err != nil {
			log.Printf("Error copying file: %v", err)
			dialog.ShowError(err, ui.window)
			return
		}
		ui.settings.SetCopyDirectory(filepath.Dir(dst))
		ui.showNotification(fmt.Sprintf(ui.localization.GetText(KeyCopied), dst), false)
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		lang := ui.settings.GetLanguage()
		if lang != ui.localization.GetCurrentLanguage() {
			ui.localization.SetLanguage(lang)
			ui.refreshUITexts()
			ui.createMenu()
		}
	})
}

// showNotification displays a message in the notification panel under the directory row.
// When spinning is true, a spinner is shown until hideNotification; otherwise the
// panel hides itself after NotificationAutoHide.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	seq := ui.notificationSeq.Add(1)
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})

	if !spinning {
		time.AfterFunc(NotificationAutoHide, func() {
			if ui.notificationSeq.Load() == seq {
				ui.hideNotification()
			}
		})
	}
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSeq.Add(1)
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}
