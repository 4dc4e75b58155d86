package board

// Attribute and class vocabulary the controllers scan for. The page builder
// and any future page source must use these markers; the controllers carry no
// other coupling to page content.
const (
	// Notification banners
	ClassFlashes = "flashes" // container of flash items
	ClassFlash   = "flash"   // one dismissible item
	ClassFading  = "fading"  // item mid fade-out
	AttrAutoHide = "data-autohide"
	AttrDismiss  = "data-dismiss" // per-item close control

	// Confirmation guard
	AttrConfirm = "data-confirm" // prompt text; empty value uses the default

	// Filter auto-submit
	AttrAutoSubmit     = "data-autosubmit"      // on a form
	AttrAutoSubmitText = "data-autosubmit-text" // opt-in for text fields, form- or field-level

	// Numeric validation
	AttrNumeric  = "data-numeric"
	AttrMin      = "min"
	AttrMax      = "max"
	ClassInvalid = "invalid"

	// Tooltip
	AttrTip = "data-tip"

	// Modal dialogs
	ClassModal       = "modal"
	ClassOpen        = "open"
	ClassModalOpen   = "modal-open" // set on the document root while a dialog is open
	AttrModalOpen    = "data-modal-open"
	AttrModalClose   = "data-modal-close"
	AttrOverlayClose = "data-overlay-close"
	AttrAriaHidden   = "aria-hidden"

	// Charts
	ClassChart     = "chart"
	AttrChartKind  = "data-kind"
	AttrChartLabel = "data-label"
	AttrChartXs    = "data-labels"
	AttrChartYs    = "data-values"
	AttrChartMin   = "data-min"
	AttrChartMax   = "data-max"

	// Clipboard
	AttrCopy       = "data-copy"
	AttrCopyTarget = "data-copy-target"
)
