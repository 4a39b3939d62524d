package mappings

import "sync"

// defaultEntries is the built-in vocabulary. Values read as
// "component finish [density] [bloom] material shape modifiers".
var defaultEntries = map[string]string{
	// Primary actions
	"ok-button":      "button flat sapphire plaque hoverable",
	"primary-button": "button polished default-primary pill hoverable",
	"submit-button":  "button polished default-primary pill hoverable",
	"confirm-button": "button polished default-primary pill hoverable",

	// Secondary actions
	"cancel-button":    "button flat default-contrast plaque hoverable",
	"secondary-button": "button polished default-secondary round hoverable",
	"back-button":      "button flat default-contrast round hoverable",

	// Destructive actions
	"delete-button": "button polished ruby pill hoverable",
	"danger-button": "button polished ruby pill hoverable",
	"remove-button": "button flat ruby pill hoverable",

	// Premium actions
	"upgrade-button": "button metallic bloom-mild gold gem hoverable",
	"premium-button": "button glossy bloom-strong gold gem hoverable",
	"feature-button": "button metallic bloom-weak sapphire round hoverable",

	// Navigation
	"next-button": "button polished default-primary chevron-start hoverable",
	"prev-button": "button polished default-primary chevron-start hoverable",
	"nav-button":  "button polished default-secondary pill hoverable",

	// Tags and chips
	"tag":           "chip milky sapphire pill hoverable",
	"badge":         "chip milky emerald pill hoverable",
	"label":         "chip transparent default-secondary pill",
	"premium-badge": "chip glossy bloom-strong ruby gem",

	// Cards
	"card":         "surface card transparent default-secondary window",
	"glass-card":   "surface card transparent diamond window",
	"dark-card":    "surface card tinted onyx window",
	"premium-card": "surface card metallic gold round",
	"content-card": "surface card milky default-secondary window",

	// Dialogs and overlays
	"dialog":  "surface dialog liquid diamond window overlay",
	"modal":   "surface dialog tinted onyx window overlay",
	"popover": "surface card transparent default-secondary window overlay",
	"menu":    "surface card frosted default-secondary round overlay",

	// Panels and sheets
	"panel":         "surface sheet milky default-secondary window",
	"sidebar":       "surface sheet frosted default-secondary window",
	"content-panel": "surface sheet frosted glass window",

	// Frames
	"frame":         "surface frame flat default-contrast round",
	"minimal-frame": "surface frame flat default-contrast plaque",

	// Special effects
	"glass-button":    "button transparent diamond pill disabled",
	"metallic-button": "button metallic copper round hoverable",
	"glossy-button":   "button glossy silver pill hoverable",
	"frosted-button":  "button frosted glass pill hoverable",

	// Textured
	"brushed-button": "button metallic copper anodized round hoverable",
	"etched-card":    "surface card frosted glass etched window",

	// Minimal
	"minimal-button": "button flat default-contrast round",

	// State
	"fancy-button":    "button polished default-primary pill hoverable",
	"selected-button": "button polished default-primary pill hoverable selected",
	"disabled-button": "button flat default-contrast round disabled",
	"active-button":   "button polished emerald pill hoverable selected",

	// Code display uses its own two-token schema.
	"code": "code block",
}

var defaultExempt = []string{"code"}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It is constructed on first use and shared
// for the life of the process.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultEntries, defaultExempt...)
		if err != nil {
			panic("mappings: invalid built-in table: " + err.Error())
		}
		defaultTable = t
	})
	return defaultTable
}
