package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefsMixesNamesAndIDs(t *testing.T) {
	refs, err := Refs(16251, "suomynona", int64(150863), Name("hampa"))
	require.NoError(t, err)

	assert.Equal(t, []UserRef{ID(16251), Name("suomynona"), ID(150863), Name("hampa")}, refs)
	assert.False(t, refs[0].IsName())
	assert.True(t, refs[1].IsName())
	assert.Equal(t, "16251", refs[0].String())
	assert.Equal(t, "suomynona", refs[1].String())
}

func TestRefsRejectsOtherTypes(t *testing.T) {
	_, err := Refs("alice", 1.5)

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "users", argErr.Op)
}

func TestOperationNames(t *testing.T) {
	assert.Equal(t, "get_userinfo", GetUserInfo.String())
	assert.Equal(t, "send_tc", SendTC.String())
	assert.True(t, SendItems.Mutating())
	assert.False(t, GetItems.Mutating())
}

func TestLoginErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&LoginError{Kind: LoginNetwork, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "login failed (network failure): connection refused", err.Error())
}
