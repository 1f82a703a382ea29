package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	p := NewPolicy([]string{"chefe@baba.com", " Capitao@Baba.com "})

	assert.True(t, p.IsAdmin("chefe@baba.com"))
	assert.True(t, p.IsAdmin("CHEFE@BABA.COM"))
	assert.True(t, p.IsAdmin("capitao@baba.com"))
	assert.False(t, p.IsAdmin("torcedor@baba.com"))
	assert.False(t, p.IsAdmin(""))
	// Exact match only, no domain rules.
	assert.False(t, p.IsAdmin("chefe@baba.com.br"))
}

func TestIsAdmin_EmptyList(t *testing.T) {
	p := NewPolicy(nil)
	assert.False(t, p.IsAdmin("chefe@baba.com"))
}
