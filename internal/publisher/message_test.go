package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artemisops/internal/domain"
	"artemisops/testdata/utils"
)

func TestNewMissionMessage(t *testing.T) {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.FixedZone("EDT", -4*3600))
	m := &domain.Mission{ID: "artemis-ii", Name: "Artemis II", LaunchDate: utils.Ptr("2026-04-01T12:00:00Z")}

	created := NewMissionMessage(m, true, now)
	assert.Equal(t, ActionCreate, created.Action)
	assert.Equal(t, time.UTC, created.Timestamp.Location())
	assert.True(t, now.Equal(created.Timestamp))

	updated := NewMissionMessage(m, false, now)
	assert.Equal(t, ActionUpdate, updated.Action)

	body, err := json.Marshal(created)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "create", decoded["action"])
	mission := decoded["mission"].(map[string]any)
	assert.Equal(t, "artemis-ii", mission["id"])
	assert.Equal(t, "2026-04-01T12:00:00Z", mission["launch_date"])
}
