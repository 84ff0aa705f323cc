package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/gravitrone/pagepanel/internal/config"
)

// Panel copy.
const (
	loadingThemeText    = "Loading theme..."
	loadingContentText  = "Loading content..."
	fallbackName        = "World"
	engagementHeading   = "Page Engagement"
	noCommentsText      = "No comments yet — be the first to leave one!"
	emptyCommentText    = "[No comment content]"
	lastUpdatedMissing  = "Last updated info not available"
	maxRenderedComments = 3
)

// ElementKind is the kind of a rendered panel element.
type ElementKind int

const (
	ElementLoading ElementKind = iota
	ElementHeading
	ElementText
	ElementThemeLabel
	ElementComment
)

// Variant selects how an element is emphasized.
type Variant int

const (
	VariantDefault Variant = iota
	VariantBrand
	VariantAccent
	VariantSuccess
	VariantRemoved
)

// HeadingSize mirrors the two heading sizes the panel uses.
type HeadingSize int

const (
	HeadingNone HeadingSize = iota
	HeadingXLarge
	HeadingMedium
)

// Element is one line of the panel's output description.
type Element struct {
	Kind    ElementKind
	Text    string
	Badge   string
	Size    HeadingSize
	Variant Variant
}

// LayoutOptions carries the formatting inputs that are not part of the state.
type LayoutOptions struct {
	TimeLayout string
	Location   *time.Location
	// Now enables the relative "(3 days ago)" hint when set.
	Now func() time.Time
}

// Layout describes what the panel shows for a state. It has no side effects:
// the same state and options always produce the same elements.
func Layout(s ViewState, opts LayoutOptions) []Element {
	if s.ThemeMode == ThemeUnset {
		return []Element{{Kind: ElementLoading, Text: loadingThemeText}}
	}

	name := s.DisplayName
	if name == "" {
		name = fallbackName
	}

	resolved := s.ResolvedText
	if resolved == "" {
		resolved = loadingContentText
	}

	lozenge := VariantSuccess
	if s.ThemeMode == ThemeDark {
		lozenge = VariantRemoved
	}

	elements := []Element{
		{Kind: ElementHeading, Size: HeadingXLarge, Text: fmt.Sprintf("Hello %s!", name)},
		{Kind: ElementHeading, Size: HeadingXLarge, Variant: VariantBrand, Text: "Hello World!"},
		{Kind: ElementText, Variant: VariantAccent, Text: "Hello World!"},
		{Kind: ElementText, Text: resolved},
		{Kind: ElementText, Text: fmt.Sprintf("Welcome to the %s space!", s.SpaceName)},
		{Kind: ElementThemeLabel, Text: "Current theme: ", Badge: string(s.ThemeMode), Variant: lozenge},
		{Kind: ElementHeading, Size: HeadingMedium, Text: engagementHeading},
	}

	if len(s.Comments) > 0 {
		elements = append(elements, Element{Kind: ElementText, Text: fmt.Sprintf("Number of footer comments: %d", len(s.Comments))})
	} else {
		elements = append(elements, Element{Kind: ElementText, Text: noCommentsText})
	}

	for i, comment := range s.Comments {
		if i == maxRenderedComments {
			break
		}
		body, present := comment.PlainText()
		if !present {
			body = emptyCommentText
		}
		elements = append(elements, Element{Kind: ElementComment, Text: "• " + body})
	}

	elements = append(elements, Element{Kind: ElementText, Text: formatLastUpdated(s.LastUpdated, opts)})
	return elements
}

func formatLastUpdated(when string, opts LayoutOptions) string {
	if when == "" {
		return lastUpdatedMissing
	}
	t, err := time.Parse(time.RFC3339, when)
	if err != nil {
		return "Last updated: " + when
	}

	layout := opts.TimeLayout
	if layout == "" {
		layout = config.DefaultTimeLayout
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	out := "Last updated: " + t.In(loc).Format(layout)
	if opts.Now != nil {
		out += " (" + humanize.RelTime(t, opts.Now(), "ago", "from now") + ")"
	}
	return out
}
