package export

import (
	"github.com/promptplan/promptplan/internal/models"
	"github.com/promptplan/promptplan/internal/question"
)

// Recommended stacks, one per inference branch.
const (
	stackNoBuild   = "Plain HTML, CSS, and JavaScript. No build tools, no framework, a single folder you can open directly in a browser."
	stackMobile    = "React Native with Expo, backed by Supabase for auth and data."
	stackFullWeb   = "Next.js with Supabase for auth, data, and storage, styled with Tailwind CSS."
	stackExtension = "A vanilla JavaScript Chrome extension (Manifest V3), no framework needed."
	stackDefault   = "Next.js styled with Tailwind CSS."
)

// premiumFeatures are the selections that push the recommendation toward a
// full-stack framework with a managed backend.
var premiumFeatures = []string{
	question.OptFeatureChat,
	question.OptFeaturePayments,
	question.OptFeatureAI,
	question.OptFeatureAnalytics,
}

// StackIsExplicit reports whether the user made a concrete stack choice.
// "Let AI Decide" counts as deferred, the same as a skip.
func StackIsExplicit(s *models.SessionState) bool {
	v := s.Answers.Get(question.IDStack)
	return v.IsAnswered() && v.Scalar != question.OptStackLetAIDecide
}

// InferStack recommends a tech stack when the user deferred the decision.
// Rules are checked top to bottom; the first match wins.
func InferStack(s *models.SessionState) string {
	platform := s.Answers.Get(question.IDPlatform).Scalar
	features := s.Answers.Get(question.IDFeatures).Values()

	switch {
	case platform == question.OptPlatformNoBuild:
		return stackNoBuild
	case platform == question.OptPlatformMobile:
		return stackMobile
	case hasAny(features, premiumFeatures):
		return stackFullWeb
	case contains(features, question.OptFeatureSocial):
		return stackFullWeb
	case platform == question.OptPlatformExtension:
		return stackExtension
	default:
		return stackDefault
	}
}

func contains(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func hasAny(haystack, needles []string) bool {
	for _, n := range needles {
		if contains(haystack, n) {
			return true
		}
	}
	return false
}
