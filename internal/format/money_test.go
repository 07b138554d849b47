package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyEnglishGrouping(t *testing.T) {
	f := New("en")
	assert.Equal(t, "12,600 ₽", f.Money(12600))
	assert.Equal(t, "0 ₽", f.Money(0))
	assert.Equal(t, "300 ₽", f.Money(300))
	assert.Equal(t, "1,234,567", f.Number(1234567))
}

func TestMoneyRussianGroupsThousands(t *testing.T) {
	got := New("ru").Money(26700)
	assert.True(t, strings.HasPrefix(got, "26"))
	assert.True(t, strings.HasSuffix(got, "700 ₽"))
	assert.NotEqual(t, "26700 ₽", got, "thousands must be separated")
}

func TestMoneyBadLocaleFallsBack(t *testing.T) {
	assert.Equal(t, New("ru").Money(8900), New("???").Money(8900))
}
