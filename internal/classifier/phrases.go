package classifier

// implementationPhrases holds the curated per-safeguard direct-implementation
// phrase lists. Safeguards without an entry score 0 on the implementation
// group and can only be classified into the non-implementation roles.
var implementationPhrases = map[string][]string{
	"1.1": {
		"asset inventory", "hardware inventory", "software inventory",
		"automated discovery", "inventory", "ownership",
	},
	"1.2": {
		"unauthorized asset", "quarantine", "network access control",
		"detect unauthorized", "remove unauthorized",
	},
	"2.1": {
		"software inventory", "application inventory", "installed software",
		"software catalog",
	},
	"2.2": {
		"supported software", "end-of-life", "unauthorized software", "allowlist",
	},
	"3.1": {
		"data inventory", "data classification", "sensitive data", "data map",
	},
	"5.1": {
		"account inventory", "user account", "account management",
		"directory", "dormant account",
	},
	"6.1": {
		"access granting", "provisioning", "onboarding",
		"role-based access", "access request",
	},
	"7.1": {
		"vulnerability scan", "vulnerability management", "patch",
		"remediation", "cve",
	},
	"8.1": {
		"audit log", "log collection", "centralized logging", "log retention",
	},
	"13.1": {
		"network monitoring", "intrusion detection", "traffic analysis",
		"packet capture",
	},
	"17.1": {
		"incident response plan", "incident handling", "response procedures",
		"escalation",
	},
}

// governancePhrases is the policy/process/oversight vocabulary.
var governancePhrases = []string{
	"policy", "policies", "procedure", "oversight", "governance",
	"standard", "accountability", "roles and responsibilities",
	"management approval",
}

// facilitationPhrases is the enhancement/integration/data-enrichment vocabulary.
var facilitationPhrases = []string{
	"integrates", "integration", "enriches", "enrichment", "feeds into",
	"exports", "enhances", "augments", "correlates with", "connector",
	"plugin", "data source",
}

// validationPhrases is the audit/report/compliance vocabulary.
var validationPhrases = []string{
	"audit", "audits", "compliance", "report", "reporting", "attestation",
	"verify", "verification", "evidence", "assessment", "certification",
}

// qualitySignal is one named signal group scanned by the quality assessor.
type qualitySignal struct {
	Label   string
	Phrases []string
}

// qualitySignalSet is the per-role signal table. The primary signal carries
// the +0.4 increment, each secondary signal +0.2, capped at 1.0. These sets
// rate how well a role is executed, unlike the classification groups above
// which decide which role the text evidences.
type qualitySignalSet struct {
	// Primary is empty for implementation roles, which resolve their
	// primary phrases per safeguard from implementationPhrases.
	Primary    []string
	PrimaryGap string
	Secondary  []qualitySignal
}

var implementationQuality = qualitySignalSet{
	PrimaryGap: "no direct implementation evidence for this safeguard",
	Secondary: []qualitySignal{
		{Label: "comprehensiveness", Phrases: []string{"comprehensive", "complete", "detailed", "full coverage", "entire", "all assets", "all devices"}},
		{Label: "automation", Phrases: []string{"automated", "automatic", "automation", "continuous", "real-time", "scheduled"}},
		{Label: "review cadence", Phrases: []string{"review", "bi-annual", "quarterly", "monthly", "weekly", "daily", "regular"}},
	},
}

var governanceQuality = qualitySignalSet{
	Primary:    []string{"policy", "policies", "governance", "standard", "oversight"},
	PrimaryGap: "no policy or oversight language in the description",
	Secondary: []qualitySignal{
		{Label: "process definition", Phrases: []string{"process", "procedure", "workflow", "lifecycle"}},
		{Label: "accountability", Phrases: []string{"accountability", "ownership", "roles", "responsibilities"}},
		{Label: "documentation", Phrases: []string{"documented", "documentation", "template", "guideline"}},
	},
}

var facilitationQuality = qualitySignalSet{
	Primary: []string{
		"integrates", "integration", "enables", "enhances", "enriches",
		"helps", "help", "supports", "augments",
	},
	PrimaryGap: "no enablement or integration language in the description",
	Secondary: []qualitySignal{
		{Label: "data flow", Phrases: []string{"data", "api", "export", "feed", "sync"}},
		{Label: "added visibility", Phrases: []string{"visibility", "context", "insight", "coverage"}},
		{Label: "interoperability", Phrases: []string{"connector", "plugin", "platform", "ecosystem"}},
	},
}

var validationQuality = qualitySignalSet{
	Primary: []string{
		"audit", "verifies", "verify", "validates", "validation",
		"assessment", "tests",
	},
	PrimaryGap: "no audit or verification language in the description",
	Secondary: []qualitySignal{
		{Label: "reporting", Phrases: []string{"report", "reports", "dashboard", "evidence"}},
		{Label: "compliance framing", Phrases: []string{"compliance", "conformance", "framework", "control"}},
		{Label: "verification cadence", Phrases: []string{"scheduled", "periodic", "quarterly", "annual", "continuous"}},
	},
}
