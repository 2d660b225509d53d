package domain

// categoryPrerequisites maps a legacy category to the categories that must
// have left NOT_PROCESSED in the current pass before it may be synchronized.
var categoryPrerequisites = map[SyncCategory][]SyncCategory{
	CharContractItems:          {CharContracts},
	CharContractBids:           {CharContracts},
	CharMailBodies:             {CharMailMessages},
	CharCalendarEventAttendees: {CharUpcomingCalendarEvents, CharCharacterSheet},
	CharNotificationTexts:      {CharNotifications},

	CorpContractItems:  {CorpContracts},
	CorpContractBids:   {CorpContracts},
	CorpOutpostDetail:  {CorpOutpostList},
	CorpStarbaseDetail: {CorpStarbaseList},
}

// Prerequisites returns the categories that must be processed before c.
// The returned slice must not be modified.
func Prerequisites(c SyncCategory) []SyncCategory {
	return categoryPrerequisites[c]
}
