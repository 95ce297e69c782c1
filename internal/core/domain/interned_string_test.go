package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("$B/assets/logo.o")
	is2 := domain.NewInternedString("$B/assets/logo.o")

	assert.Equal(t, is1.Value(), is2.Value())
	assert.Equal(t, "$B/assets/logo.o", is1.String())
	assert.Empty(t, domain.InternedString{}.String())
}

func TestInternedStringJSON(t *testing.T) {
	type wrapper struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(wrapper{Name: domain.NewInternedString("assets:logo.bin")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"assets:logo.bin"}`, string(data))

	var got wrapper
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "assets:logo.bin", got.Name.String())
}

func TestNewInternedStrings(t *testing.T) {
	in := []string{"contrib/tools/yasm", "contrib/tools/yasm"}
	got := domain.NewInternedStrings(in)

	require.Len(t, got, 2)
	assert.Equal(t, got[0].Value(), got[1].Value())
	assert.Equal(t, in, domain.Strings(got))
	assert.Empty(t, domain.NewInternedStrings(nil))
}
