package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/circuit/pkg/session"
)

func TestActionKeysAreUnique(t *testing.T) {
	keys := lo.Map(actionKeys, func(b keyBinding, _ int) ebiten.Key { return b.key })
	actions := lo.Map(actionKeys, func(b keyBinding, _ int) session.Action { return b.action })

	assert.Len(t, lo.Uniq(keys), len(actionKeys))
	assert.Len(t, lo.Uniq(actions), len(actionKeys))
	assert.Contains(t, actions, session.ActionMenu)
}
