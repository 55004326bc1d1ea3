package ports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/homey-mcp/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestSession_Establish(t *testing.T) {
	ctx := context.Background()

	t.Run("Dial failure leaves session unset", func(t *testing.T) {
		s := ports.NewSession()
		err := s.Establish(ctx, func(context.Context) (ports.Backend, error) {
			return nil, errors.New("connection refused")
		})
		assert.EqualError(t, err, "connection refused")
		assert.False(t, s.Connected())
		assert.Nil(t, s.Backend())
	})

	t.Run("Established once", func(t *testing.T) {
		s := ports.NewSession()
		dials := 0
		dial := func(context.Context) (ports.Backend, error) {
			dials++
			return stubBackend{}, nil
		}

		assert.NoError(t, s.Establish(ctx, dial))
		assert.True(t, s.Connected())
		assert.ErrorIs(t, s.Establish(ctx, dial), ports.ErrAlreadyConnected)
		assert.Equal(t, 1, dials)
	})

	t.Run("Nil session", func(t *testing.T) {
		var s *ports.Session
		assert.Nil(t, s.Backend())
	})
}
