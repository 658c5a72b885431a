package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"manege/shared/validator"
)

type createReservationBody struct {
	ResourceID string `json:"resource_id" validate:"required"`
	StartTime  string `json:"start_time"  validate:"required"`
	EndTime    string `json:"end_time"    validate:"required"`
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed cancelled"`
}

func TestValidateDecodesAndValidates(t *testing.T) {
	body := `{"resource_id":"rijhal-binnen","start_time":"2025-01-06T09:00:00Z","end_time":"2025-01-06T10:00:00Z"}`

	req := createReservationBody{}
	err := validator.Validate(strings.NewReader(body), &req)

	assert.NoError(t, err)
	assert.Equal(t, "rijhal-binnen", req.ResourceID)
}

func TestValidateMissingRequiredField(t *testing.T) {
	body := `{"start_time":"2025-01-06T09:00:00Z","end_time":"2025-01-06T10:00:00Z"}`

	req := createReservationBody{}
	err := validator.Validate(strings.NewReader(body), &req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestValidateInvalidJSON(t *testing.T) {
	req := createReservationBody{}
	err := validator.Validate(strings.NewReader("{not json"), &req)

	assert.Error(t, err)
}

func TestValidateStructOneOf(t *testing.T) {
	req := createReservationBody{
		ResourceID: "rijhal-binnen",
		StartTime:  "2025-01-06T09:00:00Z",
		EndTime:    "2025-01-06T10:00:00Z",
		Status:     "approved",
	}

	err := validator.ValidateStruct(&req)

	assert.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("info@manege.nl", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
