package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		location string
		wantErr  bool
	}{
		"utc":              {location: "UTC"},
		"seoul":            {location: "Asia/Seoul"},
		"unknown-location": {location: "Mars/Olympus_Mons", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)

			i := &InitCurrentTimeProvider{Location: tt.location}
			_, err := i.Initialize(context.Background())
			if tt.wantErr {
				var cfgErr *domain.ConfigurationErr
				assert.ErrorAs(t, err, &cfgErr)
				return
			}
			require.NoError(t, err)

			tp, err := depend.Resolve[domain.CurrentTimeProvider]()
			require.NoError(t, err)
			assert.Equal(t, tt.location, tp.Now().Location().String())
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := NewCurrentTimeProvider(nil)
	now := p.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)
	assert.Equal(t, time.UTC, now.Location())
}
