package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unifiedui/docstore-service/internal/domain/models"
)

func TestOptional(t *testing.T) {
	some := models.Some(42)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, some.OrElse(0))

	none := models.None[int]()
	assert.False(t, none.IsPresent())
	assert.Equal(t, -1, none.OrElse(-1))
}

func TestOptional_SomeNilIsPresent(t *testing.T) {
	opt := models.Some[interface{}](nil)

	assert.True(t, opt.IsPresent())
	assert.NotEqual(t, models.None[interface{}](), opt)
}
