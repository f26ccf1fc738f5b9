package model

import (
	"strings"
	"testing"

	"displaygram/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidDocumentID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "p1", want: true},
		{id: "p1 ", want: true},
		{id: "__", want: true},
		{id: "_x_", want: true},
		{id: "", want: false},
		{id: ".", want: false},
		{id: "..", want: false},
		{id: "a/b", want: false},
		{id: "__x__", want: false},
		{id: "___", want: true},
		{id: strings.Repeat("a", 1500), want: true},
		{id: strings.Repeat("a", 1501), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidDocumentID(tt.id), "id %q", tt.id)
	}
}

func TestReservationKey(t *testing.T) {
	names := []string{"acme co", "a/b foods", ".", "..", "__x__", strings.Repeat("z", 4000)}

	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := ReservationKey(name)
		assert.True(t, ValidDocumentID(key), name)
		assert.Equal(t, key, ReservationKey(name))
		assert.NotContains(t, seen, key)
		seen[key] = name
	}
}

func TestReservationDocRoundTrip(t *testing.T) {
	doc := ReservationToDoc(&entity.CompanyReservation{NormalizedName: "a/b foods", CompanyID: "c1"})

	assert.Equal(t, &entity.CompanyReservation{NormalizedName: "a/b foods", CompanyID: "c1"}, DocToReservation("ignored", doc))
	assert.Equal(t, &entity.CompanyReservation{NormalizedName: "acme co", CompanyID: "c2"},
		DocToReservation("acme co", map[string]any{FieldCompanyID: "c2"}))
}
