package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.MustParse(Fallback))

	assert.Equal("line 3 bad", From("line %d %v", 3, "bad"))
	assert.Equal("plain", From("plain"))
}
