package models

// EntryTimingFlags tell the server whether this visit is the first one in a
// calendar day/month and whether a day/month window elapsed since the last one.
type EntryTimingFlags struct {
	IsNewDaily       bool `json:"isNewDaily"`
	IsNewMonthly     bool `json:"isNewMonthly"`
	IsNewDayWindow   bool `json:"isNewDayWindow"`
	IsNewMonthWindow bool `json:"isNewMonthWindow"`
}

// EnteredEvent is the payload of "events:entered".
type EnteredEvent struct {
	EntryTimingFlags
	InitialOccupantCount int    `json:"initialOccupantCount"`
	EntryDisplayType     string `json:"entryDisplayType"`
	UserAgent            string `json:"userAgent"`
}

// DefaultEntryDisplayType is reported when no VR display is presenting.
const DefaultEntryDisplayType = "Screen"
