package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Name  Field[string]  `json:"name"`
	Photo Field[*string] `json:"photo"`
	Ref   Field[int64]   `json:"ref"`
}

func TestUnmarshal_DistinguishesAbsentNullAndValue(t *testing.T) {
	var b body
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Rex","photo":null}`), &b))

	assert.True(t, b.Name.Set)
	assert.Equal(t, "Rex", b.Name.Value)

	assert.True(t, b.Photo.Set)
	assert.Nil(t, b.Photo.Value)

	assert.False(t, b.Ref.Set)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	var b body
	err := json.Unmarshal([]byte(`{"ref":"abc"}`), &b)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	name := "old"
	Field[string]{}.Apply(&name)
	assert.Equal(t, "old", name)

	Value("new").Apply(&name)
	assert.Equal(t, "new", name)

	photo := "x.png"
	ptr := &photo
	Field[*string]{Set: true}.Apply(&ptr)
	assert.Nil(t, ptr)
}
