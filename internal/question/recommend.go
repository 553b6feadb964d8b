package question

import "strings"

// keywordRule pairs a lowercase substring with the option it suggests.
// Rules are scanned in authored order and the first hit wins, so more
// specific substrings must come before the broad ones they contain.
type keywordRule struct {
	keyword string
	option  string
}

// keywordTables maps question id to its ordered rule list. Questions without
// a table never get a recommendation.
var keywordTables = map[string][]keywordRule{
	IDPlatform: {
		{"chrome extension", OptPlatformExtension},
		{"browser extension", OptPlatformExtension},
		{"extension", OptPlatformExtension},
		{"iphone", OptPlatformMobile},
		{"android", OptPlatformMobile},
		{"ios", OptPlatformMobile},
		{"mobile", OptPlatformMobile},
		{"phone", OptPlatformMobile},
		{"desktop", OptPlatformDesktop},
		{"api", OptPlatformAPI},
		{"backend", OptPlatformAPI},
		{"landing page", OptPlatformNoBuild},
		{"static site", OptPlatformNoBuild},
		{"website", OptPlatformWeb},
		{"web", OptPlatformWeb},
	},
	IDVibe: {
		{"dark", "Dark & Techy"},
		{"techy", "Dark & Techy"},
		{"playful", "Playful & Colorful"},
		{"colorful", "Playful & Colorful"},
		{"fun", "Playful & Colorful"},
		{"kids", "Playful & Colorful"},
		{"corporate", "Corporate & Professional"},
		{"professional", "Corporate & Professional"},
		{"business", "Corporate & Professional"},
		{"retro", "Retro / Nostalgic"},
		{"nostalgic", "Retro / Nostalgic"},
		{"minimal", "Minimal & Clean"},
		{"clean", "Minimal & Clean"},
		{"simple", "Minimal & Clean"},
	},
	IDAuth: {
		{"no login", OptAuthNone},
		{"no account", OptAuthNone},
		{"anonymous", OptAuthNone},
		{"magic link", OptAuthMagicLink},
		{"google", OptAuthSocial},
		{"social login", OptAuthSocial},
		{"oauth", OptAuthSocial},
	},
	IDStack: {
		{"next.js", "Next.js + Supabase"},
		{"nextjs", "Next.js + Supabase"},
		{"supabase", "Next.js + Supabase"},
		{"react native", "Swift / Kotlin Native"},
		{"react", "React + Node"},
		{"node", "React + Node"},
		{"vue", "Vue + Firebase"},
		{"firebase", "Vue + Firebase"},
		{"django", "Python + Django"},
		{"python", "Python + Django"},
		{"swift", "Swift / Kotlin Native"},
		{"kotlin", "Swift / Kotlin Native"},
	},
}

// Recommend proposes a likely option for a question from the session's free
// text. The context must already be case-folded (models.SessionState.ContextText
// does this). Purely advisory: callers may highlight the option but must not
// auto-select it. Returns false when the question has no table or nothing
// matches.
func Recommend(questionID, contextText string) (string, bool) {
	rules, ok := keywordTables[questionID]
	if !ok {
		return "", false
	}
	for _, r := range rules {
		if strings.Contains(contextText, r.keyword) {
			return r.option, true
		}
	}
	return "", false
}
