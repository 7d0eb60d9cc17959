package config

// GetBuiltinToolsConfig returns the tool configuration shipped with the
// binary: routing policies for every abstract operation the agents use,
// plus the free page-fetch tool. User tools.yaml entries are merged on
// top, so a deployment only declares its providers and any route
// overrides.
func GetBuiltinToolsConfig() *ToolsYAMLConfig {
	return &ToolsYAMLConfig{
		Tools: map[string]ToolYAMLConfig{
			// Plain HTTP page fetch. Free, so every waterfall can start here.
			"fetch": {
				Tier:    "free",
				Ops:     []string{"fetch_url"},
				Adapter: AdapterYAMLConfig{Type: AdapterTypeFetch},
			},
		},
		Routes: map[string]RouteYAMLConfig{
			// Research phase. Search results dedupe by URL; escalation past
			// moderate search providers is rarely worth the cost.
			"web_search": {Mode: "waterfall", MaxTier: "moderate", MinResults: 3, DedupeKey: "url"},
			"fetch_url":  {Mode: "waterfall", MaxTier: "free"},
			"company_search": {
				Mode:       "cheapest_first_until_coverage",
				MaxTier:    "expensive",
				MinResults: 10,
				DedupeKey:  "domain",
			},

			// Enrichment phase. Contact discovery fans out across providers
			// because each one covers a different slice of the market.
			"person_lookup": {Mode: "fanout", MaxTier: "expensive", TopK: 2, DedupeKey: "email"},
			"enrich_company": {
				Mode:          "waterfall",
				MaxTier:       "expensive",
				MinConfidence: 0.5,
			},
			"verify_email":       {Mode: "waterfall", MaxTier: "moderate"},
			"suppression_lookup": {Mode: "waterfall", MaxTier: "cheap"},

			// Drafting and sending. Single-provider operations.
			"generate_email":       {Mode: "waterfall", MaxTier: "expensive"},
			"create_campaign":      {Mode: "waterfall"},
			"archive_campaign":     {Mode: "waterfall"},
			"send_email":           {Mode: "waterfall"},
			"mark_unsent":          {Mode: "waterfall"},
			"fetch_replies":        {Mode: "waterfall"},
			"fetch_campaign_stats": {Mode: "waterfall"},
		},
	}
}

// mergeToolsConfig overlays user tool configuration on the built-ins.
// User entries win wholesale per tool id and per op route.
func mergeToolsConfig(builtin, user *ToolsYAMLConfig) *ToolsYAMLConfig {
	merged := &ToolsYAMLConfig{
		Tools:  make(map[string]ToolYAMLConfig),
		Routes: make(map[string]RouteYAMLConfig),
	}
	for id, tc := range builtin.Tools {
		merged.Tools[id] = tc
	}
	for op, rc := range builtin.Routes {
		merged.Routes[op] = rc
	}
	if user != nil {
		for id, tc := range user.Tools {
			merged.Tools[id] = tc
		}
		for op, rc := range user.Routes {
			merged.Routes[op] = rc
		}
	}
	return merged
}
