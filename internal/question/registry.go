// Package question defines the fixed questionnaire: the ordered question
// registry and the keyword-based answer recommendation tables.
package question

import (
	"strings"

	"github.com/promptplan/promptplan/internal/models"
)

// Modality is the input kind a question accepts.
type Modality string

const (
	// ModalitySingle is a pick-one option question.
	ModalitySingle Modality = "single"
	// ModalityMulti is a pick-many option question, optionally with custom
	// comma-separated entries.
	ModalityMulti Modality = "multi"
	// ModalityText is a free-text question.
	ModalityText Modality = "text"
)

// Spec is one immutable question definition.
type Spec struct {
	ID           string
	Prompt       string
	Modality     Modality
	Options      []string
	AllowsCustom bool
	Placeholder  string
	Suggestion   string
	SectionName  string

	// RenderValue maps an answered value to spec-panel body text. Must handle
	// both scalar and list values.
	RenderValue func(models.AnswerValue) string
}

// Question ids, stable across persistence and share codes.
const (
	IDPlatform       = "platform"
	IDAudience       = "audience"
	IDVibe           = "vibe"
	IDFeatures       = "features"
	IDFeaturesCustom = "features_custom"
	IDAuth           = "auth"
	IDStack          = "stack"
	IDData           = "data"
	IDScope          = "scope"
	IDExtras         = "extras"
)

// Option labels referenced by the stack inference rules and prompt shaping.
const (
	OptPlatformWeb        = "Web App"
	OptPlatformMobile     = "Mobile App"
	OptPlatformDesktop    = "Desktop App"
	OptPlatformAPI        = "API / Backend"
	OptPlatformExtension  = "Chrome Extension"
	OptPlatformNoBuild    = "Simple Site (No Build Tools)"
	OptStackLetAIDecide   = "Let AI Decide"
	OptFeatureChat        = "Chat / Messaging"
	OptFeaturePayments    = "Payments / Billing"
	OptFeatureAI          = "AI Integration"
	OptFeatureAnalytics   = "Analytics"
	OptFeatureSocial      = "Social Features"
	OptScopePrototype     = "Quick Prototype (1-2 days)"
	OptScopeMVP           = "MVP (1-2 weeks)"
	OptScopeFull          = "Full Product (1-3 months)"
	OptScopeJustExploring = "Just Exploring"
	OptAuthEmailPassword  = "Email & Password"
	OptAuthSocial         = "Google / Social Login"
	OptAuthMagicLink      = "Magic Link"
	OptAuthNone           = "No Auth Needed"
)

func renderInline(v models.AnswerValue) string {
	return v.Display()
}

func renderBullets(v models.AnswerValue) string {
	items := v.Values()
	if len(items) == 0 {
		return ""
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}

// registry is the ordered questionnaire. Order is load-bearing: spec sections
// and document bodies follow this order regardless of answer order.
var registry = []Spec{
	{
		ID:          IDPlatform,
		Prompt:      "What kind of app is this?",
		Modality:    ModalitySingle,
		Options:     []string{OptPlatformWeb, OptPlatformMobile, OptPlatformDesktop, OptPlatformAPI, OptPlatformExtension, OptPlatformNoBuild},
		Suggestion:  "Pick the primary platform. You can note secondary ones later.",
		SectionName: "Platform",
		RenderValue: renderInline,
	},
	{
		ID:          IDAudience,
		Prompt:      "Who is this for?",
		Modality:    ModalityText,
		Placeholder: "e.g. indie developers, busy parents, small business owners...",
		Suggestion:  `Be specific. "Everyone" is too broad for a good prompt.`,
		SectionName: "Target Audience",
		RenderValue: renderInline,
	},
	{
		ID:          IDVibe,
		Prompt:      "What's the design vibe?",
		Modality:    ModalitySingle,
		Options:     []string{"Minimal & Clean", "Playful & Colorful", "Dark & Techy", "Corporate & Professional", "Retro / Nostalgic"},
		SectionName: "Design",
		RenderValue: renderInline,
	},
	{
		ID:           IDFeatures,
		Prompt:       "What are the key features? Pick all that apply.",
		Modality:     ModalityMulti,
		AllowsCustom: true,
		Options: []string{
			"User Accounts", "Dashboard", OptFeaturePayments, OptFeatureSocial, "Search",
			"Notifications", "File Upload", OptFeatureChat, OptFeatureAnalytics, "Admin Panel", OptFeatureAI,
		},
		Suggestion:  "Select the ones that matter most. You can add custom ones next.",
		SectionName: "Core Features",
		RenderValue: renderBullets,
	},
	{
		ID:          IDFeaturesCustom,
		Prompt:      "Any other features specific to your app?",
		Modality:    ModalityText,
		Placeholder: "e.g. recipe import from URL, calorie tracking, meal plan generator...",
		Suggestion:  "Describe features unique to your idea. Skip if covered above.",
		SectionName: "Custom Features",
		RenderValue: renderInline,
	},
	{
		ID:          IDAuth,
		Prompt:      "How should users sign in?",
		Modality:    ModalitySingle,
		Options:     []string{OptAuthEmailPassword, OptAuthSocial, OptAuthMagicLink, OptAuthNone},
		SectionName: "Authentication",
		RenderValue: renderInline,
	},
	{
		ID:          IDStack,
		Prompt:      "Any tech stack preference?",
		Modality:    ModalitySingle,
		Options:     []string{"React + Node", "Next.js + Supabase", "Vue + Firebase", "Python + Django", "Swift / Kotlin Native", OptStackLetAIDecide},
		Suggestion:  `If you're not sure, "Let AI Decide" is a great choice.`,
		SectionName: "Tech Stack",
		RenderValue: renderInline,
	},
	{
		ID:          IDData,
		Prompt:      "What data does the app manage?",
		Modality:    ModalityText,
		Placeholder: "e.g. user profiles, workout logs, recipes, transactions...",
		Suggestion:  "List the main types of data users will create or view.",
		SectionName: "Data Model",
		RenderValue: renderInline,
	},
	{
		ID:          IDScope,
		Prompt:      "What's the scope for the first version?",
		Modality:    ModalitySingle,
		Options:     []string{OptScopePrototype, OptScopeMVP, OptScopeFull, OptScopeJustExploring},
		SectionName: "Scope",
		RenderValue: renderInline,
	},
	{
		ID:          IDExtras,
		Prompt:      "Anything else the AI should know?",
		Modality:    ModalityText,
		Placeholder: "e.g. must work offline, needs dark mode, should look like Linear...",
		Suggestion:  "Final details, inspirations, or constraints. Skip if nothing comes to mind.",
		SectionName: "Additional Notes",
		RenderValue: renderInline,
	},
}

// All returns the full ordered question list.
func All() []Spec {
	return registry
}

// Count returns the number of questions.
func Count() int {
	return len(registry)
}

// At returns the question at index i.
func At(i int) Spec {
	return registry[i]
}

// ByID looks a question up by id.
func ByID(id string) (Spec, bool) {
	for _, q := range registry {
		if q.ID == id {
			return q, true
		}
	}
	return Spec{}, false
}

// IndexOf returns the registry position of id, or -1 when unknown.
func IndexOf(id string) int {
	for i, q := range registry {
		if q.ID == id {
			return i
		}
	}
	return -1
}
