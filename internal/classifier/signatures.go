package classifier

// ToolTypeSignature describes the lexical footprint of one tool category.
// Primary phrases weigh 3, secondary phrases weigh 1. ContextAffinity lists
// safeguard ids that grant the category a flat +1 bonus.
type ToolTypeSignature struct {
	Category        string
	Primary         []string
	Secondary       []string
	ContextAffinity []string
}

// toolTypeSignatures is ordered: ties on the maximum score resolve to the
// first category in this table (strict > comparison during the scan).
var toolTypeSignatures = []ToolTypeSignature{
	{
		Category: "inventory",
		Primary: []string{
			"asset inventory", "hardware inventory", "software inventory",
			"asset discovery", "asset management", "cmdb", "it asset",
		},
		Secondary: []string{
			"inventory", "discovery", "asset", "endpoint", "ownership", "track",
		},
		ContextAffinity: []string{"1.1", "1.2", "2.1"},
	},
	{
		Category: "identity_management",
		Primary: []string{
			"identity management", "access management", "single sign-on",
			"account provisioning", "directory service", "privileged access",
		},
		Secondary: []string{
			"identity", "authentication", "mfa", "credential", "account", "sso",
		},
		ContextAffinity: []string{"5.1", "6.1"},
	},
	{
		Category: "vulnerability_management",
		Primary: []string{
			"vulnerability scanner", "vulnerability scanning",
			"vulnerability management", "vulnerability assessment", "patch management",
		},
		Secondary: []string{
			"vulnerability", "scanner", "scanning", "patch", "cve", "remediation",
		},
		ContextAffinity: []string{"7.1"},
	},
	{
		Category: "threat_intelligence",
		Primary: []string{
			"threat intelligence", "threat feed", "indicators of compromise", "threat hunting",
		},
		Secondary: []string{
			"threat", "ioc", "intel", "adversary",
		},
	},
	{
		Category: "network_security",
		Primary: []string{
			"firewall", "network segmentation", "intrusion detection",
			"intrusion prevention", "network access control",
		},
		Secondary: []string{
			"network", "traffic", "perimeter", "vpn", "packet",
		},
		ContextAffinity: []string{"13.1"},
	},
	{
		Category: "governance",
		Primary: []string{
			"policy management", "grc", "governance platform",
			"compliance management", "risk register",
		},
		Secondary: []string{
			"policy", "governance", "compliance", "risk",
		},
		ContextAffinity: []string{"17.1"},
	},
	{
		Category: "security_analytics",
		Primary: []string{
			"siem", "security analytics", "log management",
			"security monitoring", "event correlation",
		},
		Secondary: []string{
			"logs", "alert", "detection", "correlation", "dashboard", "monitoring",
		},
		ContextAffinity: []string{"8.1"},
	},
}

// ToolCategories returns the category names in table order.
func ToolCategories() []string {
	categories := make([]string, 0, len(toolTypeSignatures))
	for _, sig := range toolTypeSignatures {
		categories = append(categories, sig.Category)
	}
	return categories
}

// KnownToolCategory reports whether name is a category in the signature table.
func KnownToolCategory(name string) bool {
	for _, sig := range toolTypeSignatures {
		if sig.Category == name {
			return true
		}
	}
	return false
}
