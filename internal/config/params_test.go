package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptly/calibrant/internal/rating"
)

func TestApplyParamsBlob_PartialOverride(t *testing.T) {
	base := rating.DefaultConfig()
	blob := []byte(`{"version": 3, "params": {"guess_floor": 0.25, "k_max": 48}}`)

	merged, version, err := ApplyParamsBlob(base, blob)
	require.NoError(t, err)
	assert.Equal(t, 3, version)
	assert.InDelta(t, 0.25, merged.GuessFloor, 1e-12)
	assert.InDelta(t, 48.0, merged.KMax, 1e-12)
	// Keys absent from the blob keep their base values.
	assert.InDelta(t, base.Scale, merged.Scale, 1e-12)
	assert.InDelta(t, base.KMin, merged.KMin, 1e-12)
}

func TestApplyParamsBlob_RejectsUnknownKey(t *testing.T) {
	base := rating.DefaultConfig()
	_, _, err := ApplyParamsBlob(base, []byte(`{"version": 1, "params": {"k_factor": 10}}`))
	require.Error(t, err)
}

func TestApplyParamsBlob_RejectsWrongType(t *testing.T) {
	base := rating.DefaultConfig()
	_, _, err := ApplyParamsBlob(base, []byte(`{"version": 1, "params": {"scale": "400"}}`))
	require.Error(t, err)
}

func TestApplyParamsBlob_RequiresVersion(t *testing.T) {
	base := rating.DefaultConfig()
	_, _, err := ApplyParamsBlob(base, []byte(`{"params": {"scale": 300}}`))
	require.Error(t, err)
}

func TestApplyParamsBlob_RejectsInvalidMerge(t *testing.T) {
	// Each key passes the schema but the merged set is unusable.
	base := rating.DefaultConfig()
	_, _, err := ApplyParamsBlob(base, []byte(`{"version": 2, "params": {"k_min": 100, "k_max": 10}}`))
	require.Error(t, err)
}

func TestApplyParamsBlob_BaseUnchangedOnError(t *testing.T) {
	base := rating.DefaultConfig()
	got, _, err := ApplyParamsBlob(base, []byte(`not json`))
	require.Error(t, err)
	assert.Equal(t, base, got)
}
