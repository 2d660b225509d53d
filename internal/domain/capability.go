package domain

import "fmt"

// Capability grants read access to one or more sync categories. Each
// capability owns a bit position in an AccessMask.
type Capability int

// Capabilities in declaration order. Append only: bit positions are
// persisted inside access masks and must never be reassigned.
const (
	AccessAccountStatus Capability = iota
	AccessAccountBalance
	AccessBlueprints
	AccessAssets
	AccessBookmarks
	AccessContactList
	AccessContracts
	AccessFacWarStats
	AccessIndustryJobs
	AccessKillLog
	AccessLocations
	AccessMarketOrders
	AccessMedals
	AccessStandings
	AccessWalletJournal
	AccessWalletTransactions

	AccessCalendarEventAttendees
	AccessCharacterSheet
	AccessChatChannels
	AccessContactNotifications
	AccessMail
	AccessMailingLists
	AccessNotifications
	AccessPlanetaryInteraction
	AccessResearch
	AccessSkillInTraining
	AccessSkillQueue
	AccessUpcomingCalendarEvents
	AccessClones
	AccessFittings
	AccessLoyalty
	AccessMining
	AccessOpportunities

	AccessContainerLog
	AccessCorporationSheet
	AccessMemberSecurity
	AccessMemberSecurityLog
	AccessMemberTracking
	AccessOutpostList
	AccessShareholders
	AccessStarbaseList
	AccessTitles
	AccessFacilities
	AccessCustomsOffice
	AccessCorporationMembership
	AccessStructures
)

// CapabilityGroup is an informal grouping used for display only.
type CapabilityGroup string

const (
	CapabilityGroupCommon      CapabilityGroup = "common"
	CapabilityGroupCharacter   CapabilityGroup = "character"
	CapabilityGroupCorporation CapabilityGroup = "corporation"
)

type capabilityDef struct {
	name        string
	bit         int
	group       CapabilityGroup
	description string
}

// capabilityTable is indexed by Capability.
//
// AccessPlanetaryInteraction reuses bit 2 (AccessBlueprints) and
// AccessCustomsOffice reuses bit 41 (AccessFacilities). Issued masks already
// encode this sharing, so granting one of a pair grants the other.
var capabilityTable = [...]capabilityDef{
	AccessAccountStatus:      {"ACCESS_ACCOUNT_STATUS", 0, CapabilityGroupCommon, "Account status"},
	AccessAccountBalance:     {"ACCESS_ACCOUNT_BALANCE", 1, CapabilityGroupCommon, "Account balance"},
	AccessBlueprints:         {"ACCESS_BLUEPRINTS", 2, CapabilityGroupCommon, "Blueprints"},
	AccessAssets:             {"ACCESS_ASSETS", 3, CapabilityGroupCommon, "Assets"},
	AccessBookmarks:          {"ACCESS_BOOKMARKS", 4, CapabilityGroupCommon, "Bookmarks"},
	AccessContactList:        {"ACCESS_CONTACT_LIST", 5, CapabilityGroupCommon, "Contact list"},
	AccessContracts:          {"ACCESS_CONTRACTS", 6, CapabilityGroupCommon, "Contracts, contract items and bids"},
	AccessFacWarStats:        {"ACCESS_FAC_WAR_STATS", 7, CapabilityGroupCommon, "Faction warfare statistics"},
	AccessIndustryJobs:       {"ACCESS_INDUSTRY_JOBS", 8, CapabilityGroupCommon, "Industry jobs"},
	AccessKillLog:            {"ACCESS_KILL_LOG", 9, CapabilityGroupCommon, "Kill log"},
	AccessLocations:          {"ACCESS_LOCATIONS", 10, CapabilityGroupCommon, "Item locations"},
	AccessMarketOrders:       {"ACCESS_MARKET_ORDERS", 11, CapabilityGroupCommon, "Market orders"},
	AccessMedals:             {"ACCESS_MEDALS", 12, CapabilityGroupCommon, "Medals"},
	AccessStandings:          {"ACCESS_STANDINGS", 13, CapabilityGroupCommon, "Standings"},
	AccessWalletJournal:      {"ACCESS_WALLET_JOURNAL", 14, CapabilityGroupCommon, "Wallet journal"},
	AccessWalletTransactions: {"ACCESS_WALLET_TRANSACTIONS", 15, CapabilityGroupCommon, "Wallet transactions"},

	AccessCalendarEventAttendees: {"ACCESS_CALENDAR_EVENT_ATTENDEES", 16, CapabilityGroupCharacter, "Calendar event attendees"},
	AccessCharacterSheet:         {"ACCESS_CHARACTER_SHEET", 17, CapabilityGroupCharacter, "Character sheet"},
	AccessChatChannels:           {"ACCESS_CHAT_CHANNELS", 18, CapabilityGroupCharacter, "Chat channels"},
	AccessContactNotifications:   {"ACCESS_CONTACT_NOTIFICATIONS", 19, CapabilityGroupCharacter, "Contact notifications"},
	AccessMail:                   {"ACCESS_MAIL", 20, CapabilityGroupCharacter, "Mail messages and bodies"},
	AccessMailingLists:           {"ACCESS_MAILING_LISTS", 21, CapabilityGroupCharacter, "Mailing lists"},
	AccessNotifications:          {"ACCESS_NOTIFICATIONS", 22, CapabilityGroupCharacter, "Notifications and notification texts"},
	AccessPlanetaryInteraction:   {"ACCESS_PLANETARY_INTERACTION", 2, CapabilityGroupCharacter, "Planetary colonies"},
	AccessResearch:               {"ACCESS_RESEARCH", 23, CapabilityGroupCharacter, "Research agents"},
	AccessSkillInTraining:        {"ACCESS_SKILL_IN_TRAINING", 24, CapabilityGroupCharacter, "Skill in training"},
	AccessSkillQueue:             {"ACCESS_SKILL_QUEUE", 25, CapabilityGroupCharacter, "Skill queue"},
	AccessUpcomingCalendarEvents: {"ACCESS_UPCOMING_CALENDAR_EVENTS", 26, CapabilityGroupCharacter, "Upcoming calendar events"},
	AccessClones:                 {"ACCESS_CLONES", 27, CapabilityGroupCharacter, "Jump clones and implants"},
	AccessFittings:               {"ACCESS_FITTINGS", 28, CapabilityGroupCharacter, "Saved fittings"},
	AccessLoyalty:                {"ACCESS_LOYALTY", 29, CapabilityGroupCharacter, "Loyalty points"},
	AccessMining:                 {"ACCESS_MINING", 30, CapabilityGroupCharacter, "Mining ledger"},
	AccessOpportunities:          {"ACCESS_OPPORTUNITIES", 31, CapabilityGroupCharacter, "Opportunities"},

	AccessContainerLog:          {"ACCESS_CONTAINER_LOG", 32, CapabilityGroupCorporation, "Container log"},
	AccessCorporationSheet:      {"ACCESS_CORPORATION_SHEET", 33, CapabilityGroupCorporation, "Corporation sheet"},
	AccessMemberSecurity:        {"ACCESS_MEMBER_SECURITY", 34, CapabilityGroupCorporation, "Member security roles"},
	AccessMemberSecurityLog:     {"ACCESS_MEMBER_SECURITY_LOG", 35, CapabilityGroupCorporation, "Member security log"},
	AccessMemberTracking:        {"ACCESS_MEMBER_TRACKING", 36, CapabilityGroupCorporation, "Member tracking"},
	AccessOutpostList:           {"ACCESS_OUTPOST_LIST", 37, CapabilityGroupCorporation, "Outposts and outpost details"},
	AccessShareholders:          {"ACCESS_SHAREHOLDERS", 38, CapabilityGroupCorporation, "Shareholders"},
	AccessStarbaseList:          {"ACCESS_STARBASE_LIST", 39, CapabilityGroupCorporation, "Starbases and starbase details"},
	AccessTitles:                {"ACCESS_TITLES", 40, CapabilityGroupCorporation, "Titles"},
	AccessFacilities:            {"ACCESS_FACILITIES", 41, CapabilityGroupCorporation, "Industry facilities"},
	AccessCustomsOffice:         {"ACCESS_CUSTOMS_OFFICE", 41, CapabilityGroupCorporation, "Customs offices"},
	AccessCorporationMembership: {"ACCESS_CORPORATION_MEMBERSHIP", 42, CapabilityGroupCorporation, "Corporation membership"},
	AccessStructures:            {"ACCESS_STRUCTURES", 43, CapabilityGroupCorporation, "Structures"},
}

var capabilityByName = func() map[string]Capability {
	m := make(map[string]Capability, len(capabilityTable))
	for i, def := range capabilityTable {
		m[def.name] = Capability(i)
	}
	return m
}()

// AllCapabilities returns every known capability in declaration order.
func AllCapabilities() []Capability {
	out := make([]Capability, len(capabilityTable))
	for i := range capabilityTable {
		out[i] = Capability(i)
	}
	return out
}

// ParseCapability resolves a capability by its wire name (e.g. "ACCESS_ASSETS").
func ParseCapability(name string) (Capability, error) {
	c, ok := capabilityByName[name]
	if !ok {
		return 0, fmt.Errorf("capability %q: %w", name, ErrNotFound)
	}
	return c, nil
}

func (c Capability) IsValid() bool { return c >= 0 && int(c) < len(capabilityTable) }

func (c Capability) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Capability(%d)", int(c))
	}
	return capabilityTable[c].name
}

// Bit returns the mask bit position owned by the capability.
func (c Capability) Bit() int { return capabilityTable[c].bit }

func (c Capability) Group() CapabilityGroup { return capabilityTable[c].group }

func (c Capability) Description() string { return capabilityTable[c].description }

// maxCapabilityBit is the highest bit position any capability occupies.
var maxCapabilityBit = func() int {
	highest := 0
	for _, def := range capabilityTable {
		highest = max(highest, def.bit)
	}
	return highest
}()
