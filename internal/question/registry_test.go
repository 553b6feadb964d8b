package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptplan/promptplan/internal/models"
)

func TestRegistry_Shape(t *testing.T) {
	all := All()
	require.Equal(t, len(all), Count())

	seen := map[string]bool{}
	for i, q := range all {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.SectionName)
		assert.NotNil(t, q.RenderValue)
		assert.False(t, seen[q.ID], "duplicate question id %q", q.ID)
		seen[q.ID] = true

		if q.Modality == ModalityText {
			assert.Empty(t, q.Options, "text question %q must have no options", q.ID)
		} else {
			assert.NotEmpty(t, q.Options, "choice question %q must have options", q.ID)
		}

		assert.Equal(t, i, IndexOf(q.ID))
	}
}

func TestRegistry_Order(t *testing.T) {
	want := []string{
		IDPlatform, IDAudience, IDVibe, IDFeatures, IDFeaturesCustom,
		IDAuth, IDStack, IDData, IDScope, IDExtras,
	}
	require.Equal(t, len(want), Count())
	for i, id := range want {
		assert.Equal(t, id, At(i).ID)
	}
}

func TestByID(t *testing.T) {
	q, ok := ByID(IDFeatures)
	require.True(t, ok)
	assert.Equal(t, ModalityMulti, q.Modality)
	assert.True(t, q.AllowsCustom)
	assert.Equal(t, "Core Features", q.SectionName)

	_, ok = ByID("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, IndexOf("nope"))
}

func TestRenderValue(t *testing.T) {
	platform, _ := ByID(IDPlatform)
	assert.Equal(t, "Web App", platform.RenderValue(models.Scalar("Web App")))

	features, _ := ByID(IDFeatures)
	assert.Equal(t, "- Search\n- Dashboard",
		features.RenderValue(models.List([]string{"Search", "Dashboard"})))
	assert.Equal(t, "- Search", features.RenderValue(models.Scalar("Search")),
		"list renderer must handle scalar values")
}
