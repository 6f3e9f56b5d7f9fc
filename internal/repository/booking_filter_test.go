package repository

import (
	"strings"
	"testing"

	"gymmaster/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingFilter_Predicates(t *testing.T) {
	assert.Empty(t, BookingFilter{}.predicates("postgres"))

	f := BookingFilter{ClassType: "Yoga", MemberName: "Al_x", Status: domain.BookingBooked}

	pg := f.predicates("postgres")
	assert.Len(t, pg, 3)
	assert.Equal(t, "ct.name LIKE ?", pg[0].sql)
	assert.Equal(t, []interface{}{"%Yoga%"}, pg[0].args)
	assert.Equal(t, []interface{}{`%Al\_x%`}, pg[1].args)
	assert.Equal(t, "b.status = ?", pg[2].sql)
	assert.Equal(t, []interface{}{"Booked"}, pg[2].args)

	my := f.predicates("mysql")
	assert.Equal(t, "ct.name LIKE BINARY ?", my[0].sql)

	lite := f.predicates("sqlite")
	assert.Equal(t, "m.name GLOB ?", lite[1].sql)
	assert.Equal(t, []interface{}{"*Al_x*"}, lite[1].args)
}

func TestContainsPredicate_MySQLIsCharsetIndependent(t *testing.T) {
	f := BookingFilter{ClassType: "Yoga", MemberName: `50%_off\`}
	for _, p := range f.predicates("mysql") {
		assert.True(t, strings.HasSuffix(p.sql, " LIKE BINARY ?"), p.sql)
		assert.NotContains(t, strings.ToUpper(p.sql), "COLLATE")
	}

	my := f.predicates("mysql")
	require.Len(t, my, 2)
	assert.Equal(t, "m.name LIKE BINARY ?", my[1].sql)
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, my[1].args)
}

func TestEscapes(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, "[*]x[?][[]", escapeGlob("*x?["))
}
