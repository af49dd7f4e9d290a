package exception

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateExceptionRequestValidate(t *testing.T) {
	req := CreateExceptionRequest{Name: "weekly_3_day"}
	assert.NoError(t, req.Validate())

	req = CreateExceptionRequest{Name: "other"}
	assert.NoError(t, req.Validate())

	req = CreateExceptionRequest{Name: "daily_3_day"}
	assert.ErrorIs(t, req.Validate(), ErrInvalidNameFormat)

	req = CreateExceptionRequest{Name: ""}
	assert.ErrorIs(t, req.Validate(), ErrInvalidNameFormat)
}

func TestCreateExceptionRequestNormalizedName(t *testing.T) {
	// Special names are lowercased; pattern names pass through untouched.
	req := CreateExceptionRequest{Name: "DEFAULT"}
	assert.Equal(t, "default", req.NormalizedName())

	req = CreateExceptionRequest{Name: "Other"}
	assert.Equal(t, "other", req.NormalizedName())

	req = CreateExceptionRequest{Name: "weekly_3_day"}
	assert.Equal(t, "weekly_3_day", req.NormalizedName())
}

func TestUpdateExceptionRequestValidate(t *testing.T) {
	var req UpdateExceptionRequest
	assert.NoError(t, req.Validate())
	assert.Nil(t, req.NormalizedName())

	bad := "not_a_rule"
	req = UpdateExceptionRequest{Name: &bad}
	assert.ErrorIs(t, req.Validate(), ErrInvalidNameFormat)

	special := "OTHER"
	req = UpdateExceptionRequest{Name: &special}
	assert.NoError(t, req.Validate())
	normalized := req.NormalizedName()
	assert.Equal(t, "other", *normalized)
}
