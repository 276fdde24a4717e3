package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banhmai_back_end/internal/models"
)

func TestSplitSuggestions(t *testing.T) {
	reply, names := SplitSuggestions("Bạn nên thử bánh mì nhé!\nPRODUCTS:\n- Bánh Mì\n- Trà Sữa\n")
	assert.Equal(t, "Bạn nên thử bánh mì nhé!", reply)
	assert.Equal(t, []string{"Bánh Mì", "Trà Sữa"}, names)
}

func TestSplitSuggestionsNoSentinel(t *testing.T) {
	reply, names := SplitSuggestions("Xin chào! Mình giúp gì được bạn?")
	assert.Equal(t, "Xin chào! Mình giúp gì được bạn?", reply)
	assert.Nil(t, names)
}

func TestMatchSuggestions(t *testing.T) {
	catalog := []models.Product{
		{ID: "1", Name: "Bánh Mì Thịt"},
		{ID: "2", Name: "Trà Sữa"},
		{ID: "3", Name: "Bánh Kem"},
	}

	// Accent-free model output still matches, and duplicates collapse.
	got := MatchSuggestions([]string{"banh mi", "Trà Sữa", "tra sua"}, catalog)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestMatchSuggestionsNoMatch(t *testing.T) {
	catalog := []models.Product{{ID: "1", Name: "Bánh Mì"}}
	assert.Empty(t, MatchSuggestions([]string{"pizza"}, catalog))
	assert.Empty(t, MatchSuggestions(nil, catalog))
}
