package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cache-browser/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	copyDirEntry    *widget.Entry
	autoRefreshChk  *widget.Check
	languageSelect  *widget.Select
	languageCodes   []string
	languageLabels  map[string]string
	autoRefreshSeen bool
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.copyDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	copyDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.copyDirEntry)

	sd.autoRefreshChk = widget.NewCheck(text(KeyAutoRefresh), nil)

	// Language select shows display names, settings store codes
	sd.languageLabels = sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(sd.languageLabels))
	for code := range sd.languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	names := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		names = append(names, sd.languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(names, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyCopyDirectory)+":"),
		copyDirRow,
		sd.autoRefreshChk,
		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 300))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.copyDirEntry.SetText(sd.settings.GetCopyDirectory())
	sd.autoRefreshSeen = sd.settings.GetAutoRefresh()
	sd.autoRefreshChk.SetChecked(sd.autoRefreshSeen)
	sd.languageSelect.SetSelected(sd.languageLabels[sd.settings.GetLanguage()])
}

func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.copyDirEntry.SetText(uri.Path())
	}, sd.window)
}

func (sd *SettingsDialog) selectedLanguage() string {
	for _, code := range sd.languageCodes {
		if sd.languageLabels[code] == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.copyDirEntry.Text; dir != "" {
		sd.settings.SetCopyDirectory(dir)
	}

	sd.settings.SetAutoRefresh(sd.autoRefreshChk.Checked)

	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if sd.autoRefreshChk.Checked != sd.autoRefreshSeen {
		message += "\n" + sd.localization.GetText(KeyRestartRequired)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
