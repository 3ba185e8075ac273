package siteconfig

// Configuration keys read by the loader, the markup builder and the path
// matcher. Keys are dotted paths into the colorbox settings document.
const (
	KeyStyle    = "custom.style"
	KeyActivate = "custom.activate"

	KeyTransitionType  = "custom.transition_type"
	KeyTransitionSpeed = "custom.transition_speed"
	KeyOpacity         = "custom.opacity"

	KeySlideshow          = "custom.slideshow.slideshow"
	KeySlideshowAuto      = "custom.slideshow.auto"
	KeySlideshowSpeed     = "custom.slideshow.speed"
	KeySlideshowTextStart = "custom.slideshow.text_start"
	KeySlideshowTextStop  = "custom.slideshow.text_stop"

	KeyTextCurrent  = "custom.text_current"
	KeyTextPrevious = "custom.text_previous"
	KeyTextNext     = "custom.text_next"
	KeyTextClose    = "custom.text_close"

	KeyOverlayClose  = "custom.overlayclose"
	KeyMaxWidth      = "custom.maxwidth"
	KeyMaxHeight     = "custom.maxheight"
	KeyInitialWidth  = "custom.initialwidth"
	KeyInitialHeight = "custom.initialheight"
	KeyFixed         = "custom.fixed"
	KeyScrolling     = "custom.scrolling"

	KeyMobileDetect      = "advanced.mobile_detect"
	KeyMobileDeviceWidth = "advanced.mobile_device_width"
	KeyCaptionTrim       = "advanced.caption_trim"
	KeyCaptionTrimLength = "advanced.caption_trim_length"
	KeyCompressionType   = "advanced.compression_type"
	KeyVisibility        = "advanced.visibility"
	KeyPages             = "advanced.pages"

	KeyExtraLoad   = "extra.load"
	KeyExtraInline = "extra.inline"
)

// Visibility modes for KeyVisibility.
const (
	VisibilityExceptListed = 0
	VisibilityOnlyListed   = 1
)
