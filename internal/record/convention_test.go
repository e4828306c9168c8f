//go:build unit
// +build unit

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConventionExpand(t *testing.T) {
	tests := []struct {
		name       string
		convention Convention
		short      string
		expected   string
	}{
		{
			name:       "prefix and postfix",
			convention: Convention{Prefix: "app.dao.", Postfix: "Dao"},
			short:      "User",
			expected:   "app.dao.UserDao",
		},
		{
			name:       "postfix only",
			convention: Convention{Postfix: "Dao"},
			short:      "Order",
			expected:   "OrderDao",
		},
		{
			name:       "prefix only",
			convention: Convention{Prefix: "app.models."},
			short:      "User",
			expected:   "app.models.User",
		},
		{
			name:       "empty convention",
			convention: Convention{},
			short:      "User",
			expected:   "User",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.convention.Expand(tt.short))
		})
	}
}

func TestConventionRoundTrip(t *testing.T) {
	conventions := []Convention{
		{},
		{Postfix: "Dao"},
		{Prefix: "app.models."},
		{Prefix: "app.dao.", Postfix: "Dao"},
		{Prefix: "x", Postfix: "y"},
	}
	shorts := []string{"User", "Order", "A", "UserDao"}

	for _, c := range conventions {
		for _, short := range shorts {
			assert.Equal(t, short, c.Short(c.Expand(short)),
				"round trip failed for convention %+v and name %q", c, short)
		}
	}
}

func TestConventionShortEmptyPostfix(t *testing.T) {
	// With an empty postfix nothing is stripped off the back, even when the
	// name happens to end in a postfix-looking suffix.
	c := Convention{Prefix: "app.models."}
	assert.Equal(t, "UserDao", c.Short("app.models.UserDao"))
}

func TestConventionShortTooShort(t *testing.T) {
	c := Convention{Prefix: "app.dao.", Postfix: "Dao"}
	assert.Equal(t, "", c.Short("app"))
}
