package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKey_JoinsParamsInOrder(t *testing.T) {
	id := uuid.MustParse("0192d5e0-0000-7000-8000-000000000001")

	assert.Equal(t, "find::"+id.String(), Key("find", id))
	assert.Equal(t, "paginable::0::20", Key("paginable", 0, 20))
}

func TestKey_NilRendersAsNil(t *testing.T) {
	assert.Equal(t, "nil", Key(nil))

	var price *float64
	assert.Equal(t, "search::nil", Key("search", price))
}

func TestKey_PointersAreDereferenced(t *testing.T) {
	price := 99.5
	assert.Equal(t, Key("search", price), Key("search", &price))
}

func TestKey_SlicesRenderElementwise(t *testing.T) {
	assert.Equal(t, "[name, asc]", Key([]string{"name", "asc"}))
	assert.Equal(t, "[]", Key([]string{}))

	// Equal effective sort specs collapse onto one key.
	assert.Equal(t, Key(0, 10, []string{"name", "asc"}), Key(0, 10, []string{"name", "asc"}))
	assert.NotEqual(t, Key(0, 10, []string{"name", "asc"}), Key(0, 10, []string{"name", "desc"}))
}
