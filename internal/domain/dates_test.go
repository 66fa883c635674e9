package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := map[string]struct {
		dates        string
		expectedFrom string
		expectedTo   string
		expectErr    bool
	}{
		"valid-range": {
			dates:        "2023-01-01,2023-12-31",
			expectedFrom: "2023-01-01",
			expectedTo:   "2023-12-31",
		},
		"valid-range-with-spaces": {
			dates:        "2023-01-01, 2023-12-31",
			expectedFrom: "2023-01-01",
			expectedTo:   "2023-12-31",
		},
		"missing-second-bound": {
			dates:     "2023-01-01",
			expectErr: true,
		},
		"too-many-parts": {
			dates:     "2023-01-01,2023-06-01,2023-12-31",
			expectErr: true,
		},
		"non-iso-format": {
			dates:     "Jan 1 2023,Dec 31 2023",
			expectErr: true,
		},
		"unpadded-month": {
			dates:     "2023-1-1,2023-12-31",
			expectErr: true,
		},
		"not-a-date": {
			dates:     "soon,later",
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			from, to, err := ParseDateRange(tt.dates)
			if tt.expectErr {
				require.Error(t, err)
				var validationErr *ValidationErr
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, from.Format(time.DateOnly))
			assert.Equal(t, tt.expectedTo, to.Format(time.DateOnly))
		})
	}
}
