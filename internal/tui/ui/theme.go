package ui

import "github.com/gdamore/tcell/v2"

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	MutedColor        tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	ActiveRowBg       tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	OnlineColor       tcell.Color
	OfflineColor      tcell.Color
	TypingColor       tcell.Color
	BadgeColor        tcell.Color
	OwnBubbleColor    tcell.Color
	RemoteBubbleColor tcell.Color
	ReceiptColor      tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DefaultTheme returns the dark messenger theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorWhiteSmoke,
		MutedColor:        tcell.ColorGray,
		BorderColor:       tcell.ColorSteelBlue,
		BorderFocusColor:  tcell.ColorLightSkyBlue,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorLightSkyBlue,
		ActiveRowBg:       tcell.ColorDarkSlateGray,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorMediumPurple,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorLightSkyBlue,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		TitleColor:        tcell.ColorMediumPurple,
		CounterColor:      tcell.ColorPapayaWhip,
		OnlineColor:       tcell.ColorLimeGreen,
		OfflineColor:      tcell.ColorGray,
		TypingColor:       tcell.ColorMediumPurple,
		BadgeColor:        tcell.ColorDodgerBlue,
		OwnBubbleColor:    tcell.ColorLightSkyBlue,
		RemoteBubbleColor: tcell.ColorWhiteSmoke,
		ReceiptColor:      tcell.ColorLimeGreen,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}

// Tag returns a tview color tag for c, e.g. "#87cefa".
func Tag(c tcell.Color) string {
	return colorName(c)
}
