package ui

// Package ui contains the Fyne-based desktop user interface for the converter.
// It turns widget state into a model.ConversionRequest, hands it to the convert
// service and reports results, advisories and errors in dialogs and the status
// area. All UI strings are localized via Localization.
