package domain

import "github.com/m04kA/barberbook/pkg/types"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultClientCancelLead    = 120 // минут до начала записи
)

// Расписание по умолчанию, если владелец его не сохранял
var (
	DefaultOpenTime   = types.TimeString("09:00")
	DefaultCloseTime  = types.TimeString("19:00")
	DefaultBreakStart = types.TimeString("13:00")
	DefaultBreakEnd   = types.TimeString("14:00")
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxClientNameLength    = 120
	MaxClientPhoneLength   = 32
	MaxBusinessNameLength  = 120
	MaxSlugLength          = 64
	MaxNotesLength         = 500
	MaxLookupIDs           = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Notes for rows created by the owner
const (
	NotesManual = "manual"
)

// ReservedSlugs пути, которые маршрутизируются до catch-all /{slug}
var ReservedSlugs = []string{"login", "logout", "admin", "api", "metrics", "healthz"}
