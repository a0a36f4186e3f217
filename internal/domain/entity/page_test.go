package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		skip         int
		limit        int
		defaultLimit int
		want         Page
	}{
		{name: "keeps valid values", skip: 5, limit: 20, defaultLimit: 10, want: Page{Skip: 5, Limit: 20}},
		{name: "zero limit uses default", skip: 0, limit: 0, defaultLimit: 10, want: Page{Skip: 0, Limit: 10}},
		{name: "negative skip is reset", skip: -3, limit: 10, defaultLimit: 10, want: Page{Skip: 0, Limit: 10}},
		{name: "limit is clamped", skip: 0, limit: 1000, defaultLimit: 10, want: Page{Skip: 0, Limit: MaxPageLimit}},
		{name: "missing default uses package default", skip: 0, limit: 0, defaultLimit: 0, want: Page{Skip: 0, Limit: DefaultPageLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NewPage(tt.skip, tt.limit, tt.defaultLimit))
		})
	}
}
