package domain

import "fmt"

// Family identifies which kind of synchronized account a category belongs to.
type Family string

const (
	FamilyCharacter   Family = "CHARACTER"
	FamilyCorporation Family = "CORPORATION"
	FamilyReference   Family = "REFERENCE"
)

func (f Family) String() string { return string(f) }

func (f Family) IsValid() bool {
	switch f {
	case FamilyCharacter, FamilyCorporation, FamilyReference:
		return true
	}
	return false
}

// SyncCategory is one kind of remote data tracked by the legacy (per-pass)
// tracker.
type SyncCategory string

const (
	CharAccountStatus          SyncCategory = "SYNC_CHAR_ACCOUNTSTATUS"
	CharAccountBalance         SyncCategory = "SYNC_CHAR_ACCOUNTBALANCE"
	CharAssetList              SyncCategory = "SYNC_CHAR_ASSETLIST"
	CharBlueprints             SyncCategory = "SYNC_CHAR_BLUEPRINTS"
	CharBookmarks              SyncCategory = "SYNC_CHAR_BOOKMARKS"
	CharCalendarEventAttendees SyncCategory = "SYNC_CHAR_CALENDAREVENTATTENDEES"
	CharCharacterSheet         SyncCategory = "SYNC_CHAR_CHARACTERSHEET"
	CharChatChannels           SyncCategory = "SYNC_CHAR_CHATCHANNELS"
	CharContactList            SyncCategory = "SYNC_CHAR_CONTACTLIST"
	CharContactNotifications   SyncCategory = "SYNC_CHAR_CONTACTNOTIFICATIONS"
	CharContracts              SyncCategory = "SYNC_CHAR_CONTRACTS"
	CharContractItems          SyncCategory = "SYNC_CHAR_CONTRACTITEMS"
	CharContractBids           SyncCategory = "SYNC_CHAR_CONTRACTBIDS"
	CharFacWarStats            SyncCategory = "SYNC_CHAR_FACWARSTATS"
	CharIndustryJobs           SyncCategory = "SYNC_CHAR_INDUSTRYJOBS"
	CharIndustryJobsHistory    SyncCategory = "SYNC_CHAR_INDUSTRYJOBSHISTORY"
	CharKillLog                SyncCategory = "SYNC_CHAR_KILLLOG"
	CharLocations              SyncCategory = "SYNC_CHAR_LOCATIONS"
	CharMailBodies             SyncCategory = "SYNC_CHAR_MAILBODIES"
	CharMailingLists           SyncCategory = "SYNC_CHAR_MAILINGLISTS"
	CharMailMessages           SyncCategory = "SYNC_CHAR_MAILMESSAGES"
	CharMarketOrders           SyncCategory = "SYNC_CHAR_MARKETORDERS"
	CharMedals                 SyncCategory = "SYNC_CHAR_MEDALS"
	CharNotifications          SyncCategory = "SYNC_CHAR_NOTIFICATIONS"
	CharNotificationTexts      SyncCategory = "SYNC_CHAR_NOTIFICATIONTEXTS"
	CharPartialCharacterSheet  SyncCategory = "SYNC_CHAR_PARTIALCHARACTERSHEET"
	CharPlanetaryColonies      SyncCategory = "SYNC_CHAR_PLANETARY_COLONIES"
	CharResearch               SyncCategory = "SYNC_CHAR_RESEARCH"
	CharSkillInTraining        SyncCategory = "SYNC_CHAR_SKILLINTRAINING"
	CharSkillQueue             SyncCategory = "SYNC_CHAR_SKILLQUEUE"
	CharSkills                 SyncCategory = "SYNC_CHAR_SKILLS"
	CharStandings              SyncCategory = "SYNC_CHAR_STANDINGS"
	CharUpcomingCalendarEvents SyncCategory = "SYNC_CHAR_UPCOMINGCALENDAREVENTS"
	CharWalletJournal          SyncCategory = "SYNC_CHAR_WALLETJOURNAL"
	CharWalletTransactions     SyncCategory = "SYNC_CHAR_WALLETTRANSACTIONS"

	CorpAccountBalance      SyncCategory = "SYNC_CORP_ACCOUNTBALANCE"
	CorpAssetList           SyncCategory = "SYNC_CORP_ASSETLIST"
	CorpBlueprints          SyncCategory = "SYNC_CORP_BLUEPRINTS"
	CorpBookmarks           SyncCategory = "SYNC_CORP_BOOKMARKS"
	CorpContactList         SyncCategory = "SYNC_CORP_CONTACTLIST"
	CorpContainerLog        SyncCategory = "SYNC_CORP_CONTAINERLOG"
	CorpContracts           SyncCategory = "SYNC_CORP_CONTRACTS"
	CorpContractItems       SyncCategory = "SYNC_CORP_CONTRACTITEMS"
	CorpContractBids        SyncCategory = "SYNC_CORP_CONTRACTBIDS"
	CorpCorporationSheet    SyncCategory = "SYNC_CORP_CORPSHEET"
	CorpCustomsOffice       SyncCategory = "SYNC_CORP_CUSTOMSOFFICE"
	CorpFacilities          SyncCategory = "SYNC_CORP_FACILITIES"
	CorpFacWarStats         SyncCategory = "SYNC_CORP_FACWARSTATS"
	CorpIndustryJobs        SyncCategory = "SYNC_CORP_INDUSTRYJOBS"
	CorpIndustryJobsHistory SyncCategory = "SYNC_CORP_INDUSTRYJOBSHISTORY"
	CorpKillLog             SyncCategory = "SYNC_CORP_KILLLOG"
	CorpLocations           SyncCategory = "SYNC_CORP_LOCATIONS"
	CorpMarketOrders        SyncCategory = "SYNC_CORP_MARKETORDERS"
	CorpMedals              SyncCategory = "SYNC_CORP_MEDALS"
	CorpMemberMedals        SyncCategory = "SYNC_CORP_MEMBERMEDALS"
	CorpMemberSecurity      SyncCategory = "SYNC_CORP_MEMBERSECURITY"
	CorpMemberSecurityLog   SyncCategory = "SYNC_CORP_MEMBERSECURITYLOG"
	CorpMemberTracking      SyncCategory = "SYNC_CORP_MEMBERTRACKING"
	CorpOutpostList         SyncCategory = "SYNC_CORP_OUTPOSTLIST"
	CorpOutpostDetail       SyncCategory = "SYNC_CORP_OUTPOSTDETAIL"
	CorpShareholders        SyncCategory = "SYNC_CORP_SHAREHOLDERS"
	CorpStandings           SyncCategory = "SYNC_CORP_STANDINGS"
	CorpStarbaseList        SyncCategory = "SYNC_CORP_STARBASELIST"
	CorpStarbaseDetail      SyncCategory = "SYNC_CORP_STARBASEDETAIL"
	CorpTitles              SyncCategory = "SYNC_CORP_TITLES"
	CorpWalletJournal       SyncCategory = "SYNC_CORP_WALLETJOURNAL"
	CorpWalletTransactions  SyncCategory = "SYNC_CORP_WALLETTRANSACTIONS"

	RefServerStatus        SyncCategory = "SYNC_REF_SERVERSTATUS"
	RefAllianceList        SyncCategory = "SYNC_REF_ALLIANCELIST"
	RefConquerableStations SyncCategory = "SYNC_REF_CONQUERABLESTATIONS"
	RefErrorList           SyncCategory = "SYNC_REF_ERRORLIST"
	RefFacWarStats         SyncCategory = "SYNC_REF_FACWARSTATS"
	RefFacWarTopStats      SyncCategory = "SYNC_REF_FACWARTOPSTATS"
	RefFacWarSystems       SyncCategory = "SYNC_REF_FACWARSYSTEMS"
	RefRefTypes            SyncCategory = "SYNC_REF_REFTYPES"
	RefSkillTree           SyncCategory = "SYNC_REF_SKILLTREE"
)

type categoryDef struct {
	category    SyncCategory
	family      Family
	capability  Capability
	restricted  bool
	description string
}

func charCat(c SyncCategory, need Capability, desc string) categoryDef {
	return categoryDef{category: c, family: FamilyCharacter, capability: need, restricted: true, description: desc}
}

func corpCat(c SyncCategory, need Capability, desc string) categoryDef {
	return categoryDef{category: c, family: FamilyCorporation, capability: need, restricted: true, description: desc}
}

func refCat(c SyncCategory, desc string) categoryDef {
	return categoryDef{category: c, family: FamilyReference, description: desc}
}

// categoryTable lists every legacy category in declaration order.
var categoryTable = []categoryDef{
	charCat(CharAccountStatus, AccessAccountStatus, "Character account status"),
	charCat(CharAccountBalance, AccessAccountBalance, "Character account balance"),
	charCat(CharAssetList, AccessAssets, "Character assets"),
	charCat(CharBlueprints, AccessBlueprints, "Character blueprints"),
	charCat(CharBookmarks, AccessBookmarks, "Character bookmarks"),
	charCat(CharCalendarEventAttendees, AccessCalendarEventAttendees, "Character calendar event attendees"),
	charCat(CharCharacterSheet, AccessCharacterSheet, "Character sheet"),
	charCat(CharChatChannels, AccessChatChannels, "Character chat channels"),
	charCat(CharContactList, AccessContactList, "Character contact list"),
	charCat(CharContactNotifications, AccessContactNotifications, "Character contact notifications"),
	charCat(CharContracts, AccessContracts, "Character contracts"),
	charCat(CharContractItems, AccessContracts, "Character contract items"),
	charCat(CharContractBids, AccessContracts, "Character contract bids"),
	charCat(CharFacWarStats, AccessFacWarStats, "Character faction warfare statistics"),
	charCat(CharIndustryJobs, AccessIndustryJobs, "Character industry jobs"),
	charCat(CharIndustryJobsHistory, AccessIndustryJobs, "Character industry jobs history"),
	charCat(CharKillLog, AccessKillLog, "Character kill log"),
	charCat(CharLocations, AccessLocations, "Character item locations"),
	charCat(CharMailBodies, AccessMail, "Character mail bodies"),
	charCat(CharMailingLists, AccessMailingLists, "Character mailing lists"),
	charCat(CharMailMessages, AccessMail, "Character mail messages"),
	charCat(CharMarketOrders, AccessMarketOrders, "Character market orders"),
	charCat(CharMedals, AccessMedals, "Character medals"),
	charCat(CharNotifications, AccessNotifications, "Character notifications"),
	charCat(CharNotificationTexts, AccessNotifications, "Character notification texts"),
	{category: CharPartialCharacterSheet, family: FamilyCharacter, description: "Character public sheet"},
	charCat(CharPlanetaryColonies, AccessPlanetaryInteraction, "Character planetary colonies"),
	charCat(CharResearch, AccessResearch, "Character research agents"),
	charCat(CharSkillInTraining, AccessSkillInTraining, "Character skill in training"),
	charCat(CharSkillQueue, AccessSkillQueue, "Character skill queue"),
	charCat(CharSkills, AccessCharacterSheet, "Character skills"),
	charCat(CharStandings, AccessStandings, "Character standings"),
	charCat(CharUpcomingCalendarEvents, AccessUpcomingCalendarEvents, "Character upcoming calendar events"),
	charCat(CharWalletJournal, AccessWalletJournal, "Character wallet journal"),
	charCat(CharWalletTransactions, AccessWalletTransactions, "Character wallet transactions"),

	corpCat(CorpAccountBalance, AccessAccountBalance, "Corporation account balances"),
	corpCat(CorpAssetList, AccessAssets, "Corporation assets"),
	corpCat(CorpBlueprints, AccessBlueprints, "Corporation blueprints"),
	corpCat(CorpBookmarks, AccessBookmarks, "Corporation bookmarks"),
	corpCat(CorpContactList, AccessContactList, "Corporation contact list"),
	corpCat(CorpContainerLog, AccessContainerLog, "Corporation container log"),
	corpCat(CorpContracts, AccessContracts, "Corporation contracts"),
	corpCat(CorpContractItems, AccessContracts, "Corporation contract items"),
	corpCat(CorpContractBids, AccessContracts, "Corporation contract bids"),
	corpCat(CorpCorporationSheet, AccessCorporationSheet, "Corporation sheet"),
	corpCat(CorpCustomsOffice, AccessCustomsOffice, "Corporation customs offices"),
	corpCat(CorpFacilities, AccessFacilities, "Corporation industry facilities"),
	corpCat(CorpFacWarStats, AccessFacWarStats, "Corporation faction warfare statistics"),
	corpCat(CorpIndustryJobs, AccessIndustryJobs, "Corporation industry jobs"),
	corpCat(CorpIndustryJobsHistory, AccessIndustryJobs, "Corporation industry jobs history"),
	corpCat(CorpKillLog, AccessKillLog, "Corporation kill log"),
	corpCat(CorpLocations, AccessLocations, "Corporation item locations"),
	corpCat(CorpMarketOrders, AccessMarketOrders, "Corporation market orders"),
	corpCat(CorpMedals, AccessMedals, "Corporation medals"),
	corpCat(CorpMemberMedals, AccessMedals, "Corporation member medals"),
	corpCat(CorpMemberSecurity, AccessMemberSecurity, "Corporation member security"),
	corpCat(CorpMemberSecurityLog, AccessMemberSecurityLog, "Corporation member security log"),
	corpCat(CorpMemberTracking, AccessMemberTracking, "Corporation member tracking"),
	corpCat(CorpOutpostList, AccessOutpostList, "Corporation outpost list"),
	corpCat(CorpOutpostDetail, AccessOutpostList, "Corporation outpost detail"),
	corpCat(CorpShareholders, AccessShareholders, "Corporation shareholders"),
	corpCat(CorpStandings, AccessStandings, "Corporation standings"),
	corpCat(CorpStarbaseList, AccessStarbaseList, "Corporation starbase list"),
	corpCat(CorpStarbaseDetail, AccessStarbaseList, "Corporation starbase detail"),
	corpCat(CorpTitles, AccessTitles, "Corporation titles"),
	corpCat(CorpWalletJournal, AccessWalletJournal, "Corporation wallet journal"),
	corpCat(CorpWalletTransactions, AccessWalletTransactions, "Corporation wallet transactions"),

	refCat(RefServerStatus, "Server status"),
	refCat(RefAllianceList, "Alliance list"),
	refCat(RefConquerableStations, "Conquerable stations"),
	refCat(RefErrorList, "API error list"),
	refCat(RefFacWarStats, "Faction warfare statistics"),
	refCat(RefFacWarTopStats, "Faction warfare top statistics"),
	refCat(RefFacWarSystems, "Faction warfare systems"),
	refCat(RefRefTypes, "Wallet reference types"),
	refCat(RefSkillTree, "Skill tree"),
}

var categoryIndex = func() map[SyncCategory]int {
	m := make(map[SyncCategory]int, len(categoryTable))
	for i, def := range categoryTable {
		m[def.category] = i
	}
	return m
}()

// AllCategories returns every legacy category in declaration order.
func AllCategories() []SyncCategory {
	out := make([]SyncCategory, len(categoryTable))
	for i, def := range categoryTable {
		out[i] = def.category
	}
	return out
}

// CategoriesFor returns the categories applicable to the family, in
// declaration order.
func CategoriesFor(f Family) []SyncCategory {
	var out []SyncCategory
	for _, def := range categoryTable {
		if def.family == f {
			out = append(out, def.category)
		}
	}
	return out
}

// ParseSyncCategory resolves a category by name.
func ParseSyncCategory(name string) (SyncCategory, error) {
	c := SyncCategory(name)
	if !c.IsValid() {
		return "", fmt.Errorf("sync category %q: %w", name, ErrNotFound)
	}
	return c, nil
}

func (c SyncCategory) String() string { return string(c) }

func (c SyncCategory) IsValid() bool {
	_, ok := categoryIndex[c]
	return ok
}

func (c SyncCategory) def() categoryDef {
	i, ok := categoryIndex[c]
	if !ok {
		return categoryDef{category: c}
	}
	return categoryTable[i]
}

// Family returns the owning family, or "" for unknown categories.
func (c SyncCategory) Family() Family { return c.def().family }

func (c SyncCategory) Description() string { return c.def().description }

// RequiredCapability returns the capability needed to read data of this
// category. The second result is false for unrestricted categories.
func (c SyncCategory) RequiredCapability() (Capability, bool) {
	def := c.def()
	return def.capability, def.restricted
}
