package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySettings           = "settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeySelectImage        = "select_image"
	KeySelectOutputDir    = "select_output_dir"
	KeyUseSourceFolder    = "use_source_folder"
	KeyInputPlaceholder   = "input_placeholder"
	KeyOutputPlaceholder  = "output_placeholder"
	KeyConvertTo          = "convert_to"
	KeySizes              = "sizes"
	KeySizesHintMulti     = "sizes_hint_multi"
	KeySizesHintSingle    = "sizes_hint_single"
	KeyConvert            = "convert"
	KeyConverting         = "converting"
	KeySelected           = "selected"
	KeyFileDropped        = "file_dropped"
	KeyOutputSet          = "output_set"
	KeyOutputReset        = "output_reset"
	KeyConverted          = "converted"
	KeySavedInSource      = "saved_in_source"
	KeyOnlySupported      = "only_supported"
	KeyMissingFileTitle   = "missing_file_title"
	KeyMissingFile        = "missing_file"
	KeyInvalidSizesTitle  = "invalid_sizes_title"
	KeyInvalidSizes       = "invalid_sizes"
	KeyUnsupportedTitle   = "unsupported_title"
	KeyUnsupported        = "unsupported"
	KeyConversionErrTitle = "conversion_error_title"
	KeyConversionErr      = "conversion_error"
	KeySizeWarningTitle   = "size_warning_title"
	KeyOpenFolderErrTitle = "open_folder_error_title"
	KeyOpenFolderErr      = "open_folder_error"
	KeyHistory            = "history"
	KeyClearHistory       = "clear_history"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeyPathCopied         = "path_copied"
	KeyPathUnavailable    = "path_unavailable"
	KeyOutputDirectory    = "output_directory"
	KeyDefaultSizes       = "default_sizes"
	KeyHistoryLimit       = "history_limit"
	KeyAutoOpenFolder     = "auto_open_folder"
	KeyConversionDone     = "conversion_done"
	KeyOK                 = "ok"
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
		// Use system locale - simplified to English for now
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

	// Final fallback - return key itself
	return key
}

// GetTextf formats the localized text for key with args
func (l *Localization) GetTextf(key string, args ...interface{}) string {
	return fmt.Sprintf(l.GetText(key), args...)
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "PicShift",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySettings:           "Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeySelectImage:        "Select Image File",
		KeySelectOutputDir:    "Select Output Directory",
		KeyUseSourceFolder:    "Use Source Folder",
		KeyInputPlaceholder:   "Drop an image here or select a file",
		KeyOutputPlaceholder:  "Same folder as the source image",
		KeyConvertTo:          "Convert to:",
		KeySizes:              "Sizes (comma-separated):",
		KeySizesHintMulti:     "One frame per size, %s px. Example: 16,32,64,128",
		KeySizesHintSingle:    "The smallest size is used, %s px. Leave empty to keep the original size",
		KeyConvert:            "Convert",
		KeyConverting:         "Converting...",
		KeySelected:           "Selected: %s",
		KeyFileDropped:        "File dropped: %s",
		KeyOutputSet:          "Output set to: %s",
		KeyOutputReset:        "Output will be saved next to the source image",
		KeyConverted:          "✅ Converted to %s\nSaved: %s",
		KeySavedInSource:      "(Output saved in source folder.)",
		KeyOnlySupported:      "Only PNG, ICO, JPEG, TIFF, or ICNS files are accepted.",
		KeyMissingFileTitle:   "Missing File",
		KeyMissingFile:        "Please select a file to convert.",
		KeyInvalidSizesTitle:  "Invalid Sizes",
		KeyInvalidSizes:       "Please enter comma-separated numeric values for %s sizes (%s). Example: 32,64,128",
		KeyUnsupportedTitle:   "Unsupported Format",
		KeyUnsupported:        "Only PNG, ICO, JPEG, TIFF, or ICNS files are accepted.",
		KeyConversionErrTitle: "Conversion Error",
		KeyConversionErr:      "An error occurred during conversion: %s",
		KeySizeWarningTitle:   "Size Warning",
		KeyOpenFolderErrTitle: "Open Folder Error",
		KeyOpenFolderErr:      "Could not open output folder: %s",
		KeyHistory:            "History",
		KeyClearHistory:       "Clear",
		KeyReveal:             "open",
		KeyCopyPath:           "path",
		KeyPathCopied:         "Path copied to clipboard",
		KeyPathUnavailable:    "File path not available",
		KeyOutputDirectory:    "Default Output Directory",
		KeyDefaultSizes:       "Default Sizes",
		KeyHistoryLimit:       "History Length",
		KeyAutoOpenFolder:     "Open output folder after conversion",
		KeyConversionDone:     "Conversion completed",
		KeyOK:                 "OK",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "PicShift",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySettings:           "Настройки",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeySelectImage:        "Выбрать изображение",
		KeySelectOutputDir:    "Выбрать папку вывода",
		KeyUseSourceFolder:    "Папка исходника",
		KeyInputPlaceholder:   "Перетащите изображение сюда или выберите файл",
		KeyOutputPlaceholder:  "Та же папка, что и у исходного изображения",
		KeyConvertTo:          "Конвертировать в:",
		KeySizes:              "Размеры (через запятую):",
		KeySizesHintMulti:     "Один кадр на размер, %s px. Пример: 16,32,64,128",
		KeySizesHintSingle:    "Используется наименьший размер, %s px. Оставьте пустым для исходного размера",
		KeyConvert:            "Конвертировать",
		KeyConverting:         "Конвертация...",
		KeySelected:           "Выбрано: %s",
		KeyFileDropped:        "Файл перетащен: %s",
		KeyOutputSet:          "Папка вывода: %s",
		KeyOutputReset:        "Результат будет сохранён рядом с исходником",
		KeyConverted:          "✅ Сконвертировано в %s\nСохранено: %s",
		KeySavedInSource:      "(Сохранено в папке исходника.)",
		KeyOnlySupported:      "Принимаются только файлы PNG, ICO, JPEG, TIFF или ICNS.",
		KeyMissingFileTitle:   "Нет файла",
		KeyMissingFile:        "Пожалуйста, выберите файл для конвертации.",
		KeyInvalidSizesTitle:  "Неверные размеры",
		KeyInvalidSizes:       "Введите числа через запятую для размеров %s (%s). Пример: 32,64,128",
		KeyUnsupportedTitle:   "Неподдерживаемый формат",
		KeyUnsupported:        "Принимаются только файлы PNG, ICO, JPEG, TIFF или ICNS.",
		KeyConversionErrTitle: "Ошибка конвертации",
		KeyConversionErr:      "Во время конвертации произошла ошибка: %s",
		KeySizeWarningTitle:   "Предупреждение о размере",
		KeyOpenFolderErrTitle: "Ошибка открытия папки",
		KeyOpenFolderErr:      "Не удалось открыть папку вывода: %s",
		KeyHistory:            "История",
		KeyClearHistory:       "Очистить",
		KeyReveal:             "открыть",
		KeyCopyPath:           "путь",
		KeyPathCopied:         "Путь скопирован в буфер обмена",
		KeyPathUnavailable:    "Путь к файлу недоступен",
		KeyOutputDirectory:    "Папка вывода по умолчанию",
		KeyDefaultSizes:       "Размеры по умолчанию",
		KeyHistoryLimit:       "Длина истории",
		KeyAutoOpenFolder:     "Открывать папку после конвертации",
		KeyConversionDone:     "Конвертация завершена",
		KeyOK:                 "ОК",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "PicShift",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySettings:           "Configurações",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeySelectImage:        "Selecionar Imagem",
		KeySelectOutputDir:    "Selecionar Diretório de Saída",
		KeyUseSourceFolder:    "Usar Pasta de Origem",
		KeyInputPlaceholder:   "Solte uma imagem aqui ou selecione um arquivo",
		KeyOutputPlaceholder:  "Mesma pasta da imagem de origem",
		KeyConvertTo:          "Converter para:",
		KeySizes:              "Tamanhos (separados por vírgula):",
		KeySizesHintMulti:     "Um quadro por tamanho, %s px. Exemplo: 16,32,64,128",
		KeySizesHintSingle:    "O menor tamanho é usado, %s px. Deixe vazio para manter o tamanho original",
		KeyConvert:            "Converter",
		KeyConverting:         "Convertendo...",
		KeySelected:           "Selecionado: %s",
		KeyFileDropped:        "Arquivo solto: %s",
		KeyOutputSet:          "Saída definida para: %s",
		KeyOutputReset:        "A saída será salva ao lado da imagem de origem",
		KeyConverted:          "✅ Convertido para %s\nSalvo: %s",
		KeySavedInSource:      "(Saída salva na pasta de origem.)",
		KeyOnlySupported:      "Apenas arquivos PNG, ICO, JPEG, TIFF ou ICNS são aceitos.",
		KeyMissingFileTitle:   "Arquivo Ausente",
		KeyMissingFile:        "Por favor, selecione um arquivo para converter.",
		KeyInvalidSizesTitle:  "Tamanhos Inválidos",
		KeyInvalidSizes:       "Digite valores numéricos separados por vírgula para tamanhos %s (%s). Exemplo: 32,64,128",
		KeyUnsupportedTitle:   "Formato Não Suportado",
		KeyUnsupported:        "Apenas arquivos PNG, ICO, JPEG, TIFF ou ICNS são aceitos.",
		KeyConversionErrTitle: "Erro de Conversão",
		KeyConversionErr:      "Ocorreu um erro durante a conversão: %s",
		KeySizeWarningTitle:   "Aviso de Tamanho",
		KeyOpenFolderErrTitle: "Erro ao Abrir Pasta",
		KeyOpenFolderErr:      "Não foi possível abrir a pasta de saída: %s",
		KeyHistory:            "Histórico",
		KeyClearHistory:       "Limpar",
		KeyReveal:             "abrir",
		KeyCopyPath:           "caminho",
		KeyPathCopied:         "Caminho copiado para a área de transferência",
		KeyPathUnavailable:    "Caminho do arquivo indisponível",
		KeyOutputDirectory:    "Diretório de Saída Padrão",
		KeyDefaultSizes:       "Tamanhos Padrão",
		KeyHistoryLimit:       "Tamanho do Histórico",
		KeyAutoOpenFolder:     "Abrir pasta de saída após a conversão",
		KeyConversionDone:     "Conversão concluída",
		KeyOK:                 "OK",
	}
}
