package config

import "slices"

// Event names that keys can be bound to.
const (
	EventDashLeft                                 = "dash-left"
	EventDashRight                                = "dash-right"
	EventDashUp                                   = "dash-up"
	EventDashDown                                 = "dash-down"
	EventBlinkToTheStartOfNextVegetation          = "blink-to-the-start-of-next-vegetation"
	EventBlinkToTheStartOfNextVegetationChunk     = "blink-to-the-start-of-next-vegetation-chunk"
	EventBlinkToTheEndOfNextVegetation            = "blink-to-the-end-of-next-vegetation"
	EventBlinkToTheEndOfNextVegetationChunk       = "blink-to-the-end-of-next-vegetation-chunk"
	EventBlinkToTheStartOfPreviousVegetation      = "blink-to-the-start-of-previous-vegetation"
	EventBlinkToTheStartOfPreviousVegetationChunk = "blink-to-the-start-of-previous-vegetation-chunk"
	EventBlinkToTheEndOfContour                   = "blink-to-the-end-of-contour"
	EventBlinkToTheStartOfContour                 = "blink-to-the-start-of-contour"
	EventBlinkToTheStartOfFirstVegetationChunk    = "blink-to-the-start-of-first-vegetation-chunk"
	EventBlinkToTheTop                            = "blink-to-the-top"
	EventBlinkUp                                  = "blink-up"
	EventBlinkUpHalf                              = "blink-up-half"
	EventBlinkDown                                = "blink-down"
	EventBlinkDownHalf                            = "blink-down-half"
	EventBlinkToTheBottom                         = "blink-to-the-bottom"
)

// EventNames lists every bindable event in display order.
var EventNames = []string{
	EventDashLeft,
	EventDashRight,
	EventDashUp,
	EventDashDown,
	EventBlinkToTheStartOfNextVegetation,
	EventBlinkToTheStartOfNextVegetationChunk,
	EventBlinkToTheEndOfNextVegetation,
	EventBlinkToTheEndOfNextVegetationChunk,
	EventBlinkToTheStartOfPreviousVegetation,
	EventBlinkToTheStartOfPreviousVegetationChunk,
	EventBlinkToTheEndOfContour,
	EventBlinkToTheStartOfContour,
	EventBlinkToTheStartOfFirstVegetationChunk,
	EventBlinkToTheTop,
	EventBlinkUp,
	EventBlinkUpHalf,
	EventBlinkDown,
	EventBlinkDownHalf,
	EventBlinkToTheBottom,
}

// IsKnownEvent reports whether name is a bindable event.
func IsKnownEvent(name string) bool {
	return slices.Contains(EventNames, name)
}
