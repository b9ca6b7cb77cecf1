package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundCarriesEntityAndID(t *testing.T) {
	err := NotFound("doctor", 5)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "doctor")
	assert.Contains(t, err.Error(), "5")
}

func TestHelpersWrapTheirSentinels(t *testing.T) {
	assert.True(t, errors.Is(Conflictf("cap reached"), ErrConflict))
	assert.True(t, errors.Is(Forbiddenf("not yours"), ErrForbidden))
	assert.True(t, errors.Is(Validationf("bad input"), ErrValidation))
	assert.False(t, errors.Is(Conflictf("cap reached"), ErrForbidden))
}

func TestExpected(t *testing.T) {
	assert.True(t, Expected(NotFound("patient", 1)))
	assert.True(t, Expected(Conflictf("dependent records exist")))
	assert.False(t, Expected(fmt.Errorf("connection refused")))
	assert.False(t, Expected(nil))
}
