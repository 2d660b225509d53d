package domain

import (
	"errors"
	"fmt"
)

// Endpoint is one category in the per-endpoint tracker design. Each endpoint
// is scheduled and tracked independently.
type Endpoint string

// EndpointScope says which kind of account owns an endpoint's data.
type EndpointScope string

const (
	ScopeCharacter   EndpointScope = "CHARACTER"
	ScopeCorporation EndpointScope = "CORPORATION"
	ScopeReference   EndpointScope = "REFERENCE"
)

const (
	EndpointCharAssets             Endpoint = "ESI_CHAR_ASSETS"
	EndpointCharBlueprints         Endpoint = "ESI_CHAR_BLUEPRINTS"
	EndpointCharBookmarks          Endpoint = "ESI_CHAR_BOOKMARKS"
	EndpointCharCalendar           Endpoint = "ESI_CHAR_CALENDAR"
	EndpointCharClones             Endpoint = "ESI_CHAR_CLONES"
	EndpointCharContacts           Endpoint = "ESI_CHAR_CONTACTS"
	EndpointCharContracts          Endpoint = "ESI_CHAR_CONTRACTS"
	EndpointCharFacWarStats        Endpoint = "ESI_CHAR_FW_STATS"
	EndpointCharFittings           Endpoint = "ESI_CHAR_FITTINGS"
	EndpointCharIndustry           Endpoint = "ESI_CHAR_INDUSTRY"
	EndpointCharKillMails          Endpoint = "ESI_CHAR_KILL_MAIL"
	EndpointCharLocation           Endpoint = "ESI_CHAR_LOCATION"
	EndpointCharLoyalty            Endpoint = "ESI_CHAR_LOYALTY"
	EndpointCharMail               Endpoint = "ESI_CHAR_MAIL"
	EndpointCharMarket             Endpoint = "ESI_CHAR_MARKET"
	EndpointCharMedals             Endpoint = "ESI_CHAR_MEDALS"
	EndpointCharMining             Endpoint = "ESI_CHAR_MINING"
	EndpointCharNotifications      Endpoint = "ESI_CHAR_NOTIFICATIONS"
	EndpointCharOpportunities      Endpoint = "ESI_CHAR_OPPORTUNITIES"
	EndpointCharPlanets            Endpoint = "ESI_CHAR_PLANETS"
	EndpointCharResearch           Endpoint = "ESI_CHAR_AGENTS"
	EndpointCharSheet              Endpoint = "ESI_CHAR_SHEET"
	EndpointCharSkillQueue         Endpoint = "ESI_CHAR_SKILL_QUEUE"
	EndpointCharSkills             Endpoint = "ESI_CHAR_SKILLS"
	EndpointCharStandings          Endpoint = "ESI_CHAR_STANDINGS"
	EndpointCharWalletBalance      Endpoint = "ESI_CHAR_WALLET_BALANCE"
	EndpointCharWalletJournal      Endpoint = "ESI_CHAR_WALLET_JOURNAL"
	EndpointCharWalletTransactions Endpoint = "ESI_CHAR_WALLET_TRANSACTIONS"

	EndpointCorpAssets             Endpoint = "ESI_CORP_ASSETS"
	EndpointCorpBlueprints         Endpoint = "ESI_CORP_BLUEPRINTS"
	EndpointCorpBookmarks          Endpoint = "ESI_CORP_BOOKMARKS"
	EndpointCorpContacts           Endpoint = "ESI_CORP_CONTACTS"
	EndpointCorpContainerLogs      Endpoint = "ESI_CORP_CONTAINER_LOGS"
	EndpointCorpContracts          Endpoint = "ESI_CORP_CONTRACTS"
	EndpointCorpCustoms            Endpoint = "ESI_CORP_CUSTOMS"
	EndpointCorpFacilities         Endpoint = "ESI_CORP_FACILITIES"
	EndpointCorpFacWarStats        Endpoint = "ESI_CORP_FW_STATS"
	EndpointCorpIndustry           Endpoint = "ESI_CORP_INDUSTRY"
	EndpointCorpKillMails          Endpoint = "ESI_CORP_KILL_MAIL"
	EndpointCorpMarket             Endpoint = "ESI_CORP_MARKET"
	EndpointCorpMedals             Endpoint = "ESI_CORP_MEDALS"
	EndpointCorpMembership         Endpoint = "ESI_CORP_MEMBERSHIP"
	EndpointCorpSheet              Endpoint = "ESI_CORP_SHEET"
	EndpointCorpShareholders       Endpoint = "ESI_CORP_SHAREHOLDERS"
	EndpointCorpStandings          Endpoint = "ESI_CORP_STANDINGS"
	EndpointCorpStarbases          Endpoint = "ESI_CORP_STARBASES"
	EndpointCorpStructures         Endpoint = "ESI_CORP_STRUCTURES"
	EndpointCorpTitles             Endpoint = "ESI_CORP_TITLES"
	EndpointCorpTracking           Endpoint = "ESI_CORP_TRACKING"
	EndpointCorpWalletBalance      Endpoint = "ESI_CORP_WALLET_BALANCE"
	EndpointCorpWalletJournal      Endpoint = "ESI_CORP_WALLET_JOURNAL"
	EndpointCorpWalletTransactions Endpoint = "ESI_CORP_WALLET_TRANSACTIONS"

	EndpointRefServerStatus   Endpoint = "ESI_REF_SERVER_STATUS"
	EndpointRefAlliance       Endpoint = "ESI_REF_ALLIANCE"
	EndpointRefSovMap         Endpoint = "ESI_REF_SOV_MAP"
	EndpointRefSovCampaign    Endpoint = "ESI_REF_SOV_CAMPAIGN"
	EndpointRefSovStructure   Endpoint = "ESI_REF_SOV_STRUCTURE"
	EndpointRefFacWarStats    Endpoint = "ESI_REF_FW_STATS"
	EndpointRefFacWarSystems  Endpoint = "ESI_REF_FW_SYSTEMS"
	EndpointRefFacWarLeaders  Endpoint = "ESI_REF_FW_LEADERBOARD"
	EndpointRefFacWarWars     Endpoint = "ESI_REF_FW_WARS"
)

type endpointDef struct {
	endpoint    Endpoint
	scope       EndpointScope
	capability  Capability
	restricted  bool
	description string
}

func charEndpoint(e Endpoint, need Capability, desc string) endpointDef {
	return endpointDef{endpoint: e, scope: ScopeCharacter, capability: need, restricted: true, description: desc}
}

func corpEndpoint(e Endpoint, need Capability, desc string) endpointDef {
	return endpointDef{endpoint: e, scope: ScopeCorporation, capability: need, restricted: true, description: desc}
}

func refEndpoint(e Endpoint, desc string) endpointDef {
	return endpointDef{endpoint: e, scope: ScopeReference, description: desc}
}

var endpointTable = []endpointDef{
	charEndpoint(EndpointCharAssets, AccessAssets, "Character assets"),
	charEndpoint(EndpointCharBlueprints, AccessBlueprints, "Character blueprints"),
	charEndpoint(EndpointCharBookmarks, AccessBookmarks, "Character bookmarks"),
	charEndpoint(EndpointCharCalendar, AccessUpcomingCalendarEvents, "Character calendar"),
	charEndpoint(EndpointCharClones, AccessClones, "Character clones and implants"),
	charEndpoint(EndpointCharContacts, AccessContactList, "Character contacts"),
	charEndpoint(EndpointCharContracts, AccessContracts, "Character contracts"),
	charEndpoint(EndpointCharFacWarStats, AccessFacWarStats, "Character faction warfare statistics"),
	charEndpoint(EndpointCharFittings, AccessFittings, "Character fittings"),
	charEndpoint(EndpointCharIndustry, AccessIndustryJobs, "Character industry jobs"),
	charEndpoint(EndpointCharKillMails, AccessKillLog, "Character kill mails"),
	charEndpoint(EndpointCharLocation, AccessLocations, "Character location"),
	charEndpoint(EndpointCharLoyalty, AccessLoyalty, "Character loyalty points"),
	charEndpoint(EndpointCharMail, AccessMail, "Character mail"),
	charEndpoint(EndpointCharMarket, AccessMarketOrders, "Character market orders"),
	charEndpoint(EndpointCharMedals, AccessMedals, "Character medals"),
	charEndpoint(EndpointCharMining, AccessMining, "Character mining ledger"),
	charEndpoint(EndpointCharNotifications, AccessNotifications, "Character notifications"),
	charEndpoint(EndpointCharOpportunities, AccessOpportunities, "Character opportunities"),
	charEndpoint(EndpointCharPlanets, AccessPlanetaryInteraction, "Character planetary colonies"),
	charEndpoint(EndpointCharResearch, AccessResearch, "Character research agents"),
	charEndpoint(EndpointCharSheet, AccessCharacterSheet, "Character sheet"),
	charEndpoint(EndpointCharSkillQueue, AccessSkillQueue, "Character skill queue"),
	charEndpoint(EndpointCharSkills, AccessCharacterSheet, "Character skills"),
	charEndpoint(EndpointCharStandings, AccessStandings, "Character standings"),
	charEndpoint(EndpointCharWalletBalance, AccessAccountBalance, "Character wallet balance"),
	charEndpoint(EndpointCharWalletJournal, AccessWalletJournal, "Character wallet journal"),
	charEndpoint(EndpointCharWalletTransactions, AccessWalletTransactions, "Character wallet transactions"),

	corpEndpoint(EndpointCorpAssets, AccessAssets, "Corporation assets"),
	corpEndpoint(EndpointCorpBlueprints, AccessBlueprints, "Corporation blueprints"),
	corpEndpoint(EndpointCorpBookmarks, AccessBookmarks, "Corporation bookmarks"),
	corpEndpoint(EndpointCorpContacts, AccessContactList, "Corporation contacts"),
	corpEndpoint(EndpointCorpContainerLogs, AccessContainerLog, "Corporation container logs"),
	corpEndpoint(EndpointCorpContracts, AccessContracts, "Corporation contracts"),
	corpEndpoint(EndpointCorpCustoms, AccessCustomsOffice, "Corporation customs offices"),
	corpEndpoint(EndpointCorpFacilities, AccessFacilities, "Corporation industry facilities"),
	corpEndpoint(EndpointCorpFacWarStats, AccessFacWarStats, "Corporation faction warfare statistics"),
	corpEndpoint(EndpointCorpIndustry, AccessIndustryJobs, "Corporation industry jobs"),
	corpEndpoint(EndpointCorpKillMails, AccessKillLog, "Corporation kill mails"),
	corpEndpoint(EndpointCorpMarket, AccessMarketOrders, "Corporation market orders"),
	corpEndpoint(EndpointCorpMedals, AccessMedals, "Corporation medals"),
	corpEndpoint(EndpointCorpMembership, AccessCorporationMembership, "Corporation membership"),
	corpEndpoint(EndpointCorpSheet, AccessCorporationSheet, "Corporation sheet"),
	corpEndpoint(EndpointCorpShareholders, AccessShareholders, "Corporation shareholders"),
	corpEndpoint(EndpointCorpStandings, AccessStandings, "Corporation standings"),
	corpEndpoint(EndpointCorpStarbases, AccessStarbaseList, "Corporation starbases"),
	corpEndpoint(EndpointCorpStructures, AccessStructures, "Corporation structures"),
	corpEndpoint(EndpointCorpTitles, AccessTitles, "Corporation titles"),
	corpEndpoint(EndpointCorpTracking, AccessMemberTracking, "Corporation member tracking"),
	corpEndpoint(EndpointCorpWalletBalance, AccessAccountBalance, "Corporation wallet balances"),
	corpEndpoint(EndpointCorpWalletJournal, AccessWalletJournal, "Corporation wallet journal"),
	corpEndpoint(EndpointCorpWalletTransactions, AccessWalletTransactions, "Corporation wallet transactions"),

	refEndpoint(EndpointRefServerStatus, "Server status"),
	refEndpoint(EndpointRefAlliance, "Alliances"),
	refEndpoint(EndpointRefSovMap, "Sovereignty map"),
	refEndpoint(EndpointRefSovCampaign, "Sovereignty campaigns"),
	refEndpoint(EndpointRefSovStructure, "Sovereignty structures"),
	refEndpoint(EndpointRefFacWarStats, "Faction warfare statistics"),
	refEndpoint(EndpointRefFacWarSystems, "Faction warfare systems"),
	refEndpoint(EndpointRefFacWarLeaders, "Faction warfare leaderboards"),
	refEndpoint(EndpointRefFacWarWars, "Faction warfare wars"),
}

var endpointIndex = func() map[Endpoint]int {
	m := make(map[Endpoint]int, len(endpointTable))
	for i, def := range endpointTable {
		m[def.endpoint] = i
	}
	return m
}()

// AllEndpoints returns every endpoint in declaration order.
func AllEndpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	for i, def := range endpointTable {
		out[i] = def.endpoint
	}
	return out
}

func endpointsWithScope(scope EndpointScope) []Endpoint {
	var out []Endpoint
	for _, def := range endpointTable {
		if def.scope == scope {
			out = append(out, def.endpoint)
		}
	}
	return out
}

// CharacterEndpoints returns the character-only endpoints.
func CharacterEndpoints() []Endpoint { return endpointsWithScope(ScopeCharacter) }

// CorporationEndpoints returns the corporation-only endpoints.
func CorporationEndpoints() []Endpoint { return endpointsWithScope(ScopeCorporation) }

// RefEndpoints returns the reference-data endpoints, which have no owning account.
func RefEndpoints() []Endpoint { return endpointsWithScope(ScopeReference) }

// CheckEndpointCoverage verifies that every account-owned endpoint belongs to
// exactly one of the character and corporation partitions. It is a startup
// self-test.
func CheckEndpointCoverage() error {
	return checkCoverage(AllEndpoints(), CharacterEndpoints(), CorporationEndpoints(), RefEndpoints())
}

func checkCoverage(all, char, corp, ref []Endpoint) error {
	seen := make(map[Endpoint]int, len(all))
	for _, e := range char {
		seen[e]++
	}
	for _, e := range corp {
		seen[e]++
	}
	isRef := make(map[Endpoint]bool, len(ref))
	for _, e := range ref {
		isRef[e] = true
	}

	var errs []error
	for _, e := range all {
		if isRef[e] {
			if seen[e] != 0 {
				errs = append(errs, fmt.Errorf("endpoint %s: reference endpoint has an account scope", e))
			}
			continue
		}
		if seen[e] != 1 {
			errs = append(errs, fmt.Errorf("endpoint %s: belongs to %d of character/corporation", e, seen[e]))
		}
	}
	return errors.Join(errs...)
}

// ParseEndpoint resolves an endpoint by name.
func ParseEndpoint(name string) (Endpoint, error) {
	e := Endpoint(name)
	if !e.IsValid() {
		return "", fmt.Errorf("endpoint %q: %w", name, ErrNotFound)
	}
	return e, nil
}

func (e Endpoint) String() string { return string(e) }

func (e Endpoint) IsValid() bool {
	_, ok := endpointIndex[e]
	return ok
}

func (e Endpoint) def() endpointDef {
	i, ok := endpointIndex[e]
	if !ok {
		return endpointDef{endpoint: e}
	}
	return endpointTable[i]
}

func (e Endpoint) Scope() EndpointScope { return e.def().scope }

func (e Endpoint) Description() string { return e.def().description }

// IsReference reports whether the endpoint tracks shared reference data.
func (e Endpoint) IsReference() bool { return e.def().scope == ScopeReference }

// RequiredCapability returns the capability needed to read the endpoint's
// data; false for reference endpoints.
func (e Endpoint) RequiredCapability() (Capability, bool) {
	def := e.def()
	return def.capability, def.restricted
}
