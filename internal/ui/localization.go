package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyFile            = "file"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeySelectDirectory = "select_directory"
	KeyRescan          = "rescan"
	KeyNoDirectory     = "no_directory"
	KeyScanning        = "scanning"
	KeyFilesFound      = "files_found"
	KeyNoFilesFound    = "no_files_found"
	KeyInformation     = "information"
	KeyOriginal        = "original"
	KeyDecoded         = "decoded"
	KeyPlay            = "play"
	KeyStop            = "stop"
	KeyVolume          = "volume"
	KeyReveal          = "reveal"
	KeyCopy            = "copy"
	KeyCopied          = "copied"
	KeyReplaceTitle    = "replace_title"
	KeyReplaceMessage  = "replace_message"
	KeySelectFileFirst = "select_file_first"
	KeyNoPreview       = "no_preview"
	KeyUnknownTitle    = "unknown_title"
	KeyCatalogUpdated  = "catalog_updated"
	KeyAutoRefresh     = "auto_refresh"
	KeyCopyDirectory   = "copy_directory"
	KeyBrowse          = "browse"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyRestartRequired = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Cache Browser",
		KeyFile:            "File",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeySelectDirectory: "Select directory",
		KeyRescan:          "Rescan",
		KeyNoDirectory:     "No directory selected",
		KeyScanning:        "Scanning %s...",
		KeyFilesFound:      "%d files",
		KeyNoFilesFound:    "No matching files found in the selected directory.",
		KeyInformation:     "Information",
		KeyOriginal:        "Original",
		KeyDecoded:         "Decoded",
		KeyPlay:            "Play",
		KeyStop:            "Stop",
		KeyVolume:          "Volume",
		KeyReveal:          "Show in folder",
		KeyCopy:            "Copy to...",
		KeyCopied:          "File copied to %s",
		KeyReplaceTitle:    "Replace file?",
		KeyReplaceMessage:  "%s already exists. Replace it?",
		KeySelectFileFirst: "Select a file to copy",
		KeyNoPreview:       "No preview available for this file type.",
		KeyUnknownTitle:    "Untitled audio",
		KeyCatalogUpdated:  "Directory changed, list updated",
		KeyAutoRefresh:     "Refresh the list when the directory changes",
		KeyCopyDirectory:   "Default copy directory",
		KeyBrowse:          "Browse",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartRequired: "Auto refresh changes apply to the next opened directory.",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Просмотр кэша",
		KeyFile:            "Файл",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeySelectDirectory: "Выбрать папку",
		KeyRescan:          "Обновить",
		KeyNoDirectory:     "Папка не выбрана",
		KeyScanning:        "Сканирование %s...",
		KeyFilesFound:      "Файлов: %d",
		KeyNoFilesFound:    "Не найдено подходящих файлов в выбранной директории.",
		KeyInformation:     "Информация",
		KeyOriginal:        "Оригинал",
		KeyDecoded:         "Декодировано",
		KeyPlay:            "Воспроизвести",
		KeyStop:            "Стоп",
		KeyVolume:          "Громкость",
		KeyReveal:          "Показать в папке",
		KeyCopy:            "Копировать в...",
		KeyCopied:          "Файл скопирован в %s",
		KeyReplaceTitle:    "Заменить файл?",
		KeyReplaceMessage:  "%s уже существует. Заменить?",
		KeySelectFileFirst: "Выберите файл для копирования",
		KeyNoPreview:       "Предпросмотр для этого типа файла недоступен.",
		KeyUnknownTitle:    "Аудио без названия",
		KeyCatalogUpdated:  "Папка изменилась, список обновлён",
		KeyAutoRefresh:     "Обновлять список при изменении папки",
		KeyCopyDirectory:   "Папка для копирования",
		KeyBrowse:          "Обзор",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены!",
		KeyRestartRequired: "Автообновление применится к следующей открытой папке.",
	}
}
